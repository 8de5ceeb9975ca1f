package translate

// Translation is the result for one input text.
type Translation struct {
	TranslatedText string `json:"translatedText"`
	// DetectedSourceLanguage is only set when the source was Automatic.
	DetectedSourceLanguage string `json:"detectedSourceLanguage,omitempty"`
}

// Detection is one language guess for an input text.
type Detection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	IsReliable bool    `json:"isReliable"`
}

// SupportedLanguage is an entry of the supported languages listing. Name is
// only present when the listing was requested with a target language.
type SupportedLanguage struct {
	Language string `json:"language"`
	Name     string `json:"name,omitempty"`
}

type translateData struct {
	Translations []Translation `json:"translations"`
}

type detectData struct {
	Detections [][]Detection `json:"detections"`
}

type languagesData struct {
	Languages []SupportedLanguage `json:"languages"`
}
