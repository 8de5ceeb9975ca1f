// Package domain contains the event types of the translation Lambda.
package domain

// Actions a Request may ask for.
const (
	ActionTranslate = "translate"
	ActionDetect    = "detect"
	ActionLanguages = "languages"
)

// Request is the input to the translation Lambda. Action defaults to
// ActionTranslate.
type Request struct {
	Action     string   `json:"action,omitempty"`
	Texts      []string `json:"texts"`
	SourceLang string   `json:"sourceLang,omitempty"`
	TargetLang string   `json:"targetLang,omitempty"`
}

// Response is the output of the translation Lambda.
type Response struct {
	Translations            []string            `json:"translations,omitempty"`
	DetectedSourceLanguages []string            `json:"detectedSourceLanguages,omitempty"`
	Detections              []Detection         `json:"detections,omitempty"`
	Languages               []SupportedLanguage `json:"languages,omitempty"`
	ChunksProcessed         int                 `json:"chunksProcessed,omitempty"`
	Error                   string              `json:"error,omitempty"`
}

// Detection is one language guess for an input text.
type Detection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	IsReliable bool    `json:"isReliable"`
}

// SupportedLanguage is an entry of the languages listing.
type SupportedLanguage struct {
	Language string `json:"language"`
	Name     string `json:"name,omitempty"`
}
