package classifier

import "context"

// Prompt 要求模型只回傳含 title 與 date 的 JSON
const Prompt = "Extract the event title and date from this image. Provide ONLY a JSON object with keys 'title' and 'date'. The date should be in the format YYYY-MM-DD. Do not include any other text in your response."

// ImageClassifier 呼叫外部圖片理解 API，回傳原始文字（預期內含 JSON）
type ImageClassifier interface {
	Analyze(ctx context.Context, image []byte, mediaType string) (string, error)
}

var supportedMediaTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/webp": {},
}

// IsSupportedMediaType API 只接受這四種圖片格式
func IsSupportedMediaType(mediaType string) bool {
	_, ok := supportedMediaTypes[mediaType]
	return ok
}
