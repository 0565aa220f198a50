package scan

import (
	"encoding/base64"
	"strings"

	"github.com/hitoshi/glowscan/internal/model"
)

// ImageSource は画像の取得元を表す。
type ImageSource string

const (
	// SourceCamera はカメラで撮影したフレーム。
	SourceCamera ImageSource = "camera"
	// SourceUpload はファイルアップロードで選択した画像。
	SourceUpload ImageSource = "upload"
)

// Image は解析対象のインメモリ画像バッファを表す。
// 形式の検証は行わない。デコード可能な画像であれば何でも受け付ける。
type Image struct {
	Source ImageSource
	Data   []byte
}

// ParseSource は文字列をImageSourceに変換する。
// 未知の取得元はdeviceエラーとして扱う。
func ParseSource(s string) (ImageSource, error) {
	switch ImageSource(s) {
	case SourceCamera:
		return SourceCamera, nil
	case SourceUpload:
		return SourceUpload, nil
	default:
		return "", model.NewDeviceUnavailableError("unknown image source: " + s)
	}
}

// DecodeImage はbase64のデータURL（またはbase64文字列）をインメモリ画像バッファに読み込む。
// "data:image/png;base64,..." 形式のプレフィックスは取り除く。
// 空のペイロードやbase64としてデコードできないペイロードはdeviceエラーを返す。
func DecodeImage(source ImageSource, payload string) (*Image, error) {
	if payload == "" {
		return nil, model.NewEmptyImageError()
	}

	encoded := payload
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, "base64,")
		if idx < 0 {
			return nil, model.NewEmptyImageError()
		}
		encoded = payload[idx+len("base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, model.NewEmptyImageError()
	}
	if len(data) == 0 {
		return nil, model.NewEmptyImageError()
	}

	return &Image{Source: source, Data: data}, nil
}
