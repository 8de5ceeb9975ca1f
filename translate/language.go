package translate

import "strings"

// Language is a language known to the translation service.
type Language int

// Languages supported by the service. Automatic and Unknown are sentinels
// and have no wire code.
const (
	Unknown Language = iota
	Automatic
	Afrikaans
	Albanian
	Arabic
	Armenian
	Azerbaijani
	Basque
	Belarusian
	Bengali
	Bulgarian
	Catalan
	ChineseSimplified
	ChineseTraditional
	Croatian
	Czech
	Danish
	Dutch
	English
	Esperanto
	Estonian
	Filipino
	Finnish
	French
	Galician
	Georgian
	German
	Greek
	Gujarati
	HaitianCreole
	Hebrew
	Hindi
	Hungarian
	Icelandic
	Indonesian
	Irish
	Italian
	Japanese
	Kannada
	Korean
	Latin
	Latvian
	Lithuanian
	Macedonian
	Malay
	Maltese
	Norwegian
	Persian
	Polish
	Portuguese
	Romanian
	Russian
	Serbian
	Slovak
	Slovenian
	Spanish
	Swahili
	Swedish
	Tamil
	Telugu
	Thai
	Turkish
	Ukrainian
	Urdu
	Vietnamese
	Welsh
	Yiddish
)

type languageInfo struct {
	code string
	name string
}

var languages = map[Language]languageInfo{
	Unknown:            {"", "Unknown"},
	Automatic:          {"", "Automatic"},
	Afrikaans:          {"af", "Afrikaans"},
	Albanian:           {"sq", "Albanian"},
	Arabic:             {"ar", "Arabic"},
	Armenian:           {"hy", "Armenian"},
	Azerbaijani:        {"az", "Azerbaijani"},
	Basque:             {"eu", "Basque"},
	Belarusian:         {"be", "Belarusian"},
	Bengali:            {"bn", "Bengali"},
	Bulgarian:          {"bg", "Bulgarian"},
	Catalan:            {"ca", "Catalan"},
	ChineseSimplified:  {"zh-CN", "Chinese (Simplified)"},
	ChineseTraditional: {"zh-TW", "Chinese (Traditional)"},
	Croatian:           {"hr", "Croatian"},
	Czech:              {"cs", "Czech"},
	Danish:             {"da", "Danish"},
	Dutch:              {"nl", "Dutch"},
	English:            {"en", "English"},
	Esperanto:          {"eo", "Esperanto"},
	Estonian:           {"et", "Estonian"},
	Filipino:           {"tl", "Filipino"},
	Finnish:            {"fi", "Finnish"},
	French:             {"fr", "French"},
	Galician:           {"gl", "Galician"},
	Georgian:           {"ka", "Georgian"},
	German:             {"de", "German"},
	Greek:              {"el", "Greek"},
	Gujarati:           {"gu", "Gujarati"},
	HaitianCreole:      {"ht", "Haitian Creole"},
	Hebrew:             {"iw", "Hebrew"},
	Hindi:              {"hi", "Hindi"},
	Hungarian:          {"hu", "Hungarian"},
	Icelandic:          {"is", "Icelandic"},
	Indonesian:         {"id", "Indonesian"},
	Irish:              {"ga", "Irish"},
	Italian:            {"it", "Italian"},
	Japanese:           {"ja", "Japanese"},
	Kannada:            {"kn", "Kannada"},
	Korean:             {"ko", "Korean"},
	Latin:              {"la", "Latin"},
	Latvian:            {"lv", "Latvian"},
	Lithuanian:         {"lt", "Lithuanian"},
	Macedonian:         {"mk", "Macedonian"},
	Malay:              {"ms", "Malay"},
	Maltese:            {"mt", "Maltese"},
	Norwegian:          {"no", "Norwegian"},
	Persian:            {"fa", "Persian"},
	Polish:             {"pl", "Polish"},
	Portuguese:         {"pt", "Portuguese"},
	Romanian:           {"ro", "Romanian"},
	Russian:            {"ru", "Russian"},
	Serbian:            {"sr", "Serbian"},
	Slovak:             {"sk", "Slovak"},
	Slovenian:          {"sl", "Slovenian"},
	Spanish:            {"es", "Spanish"},
	Swahili:            {"sw", "Swahili"},
	Swedish:            {"sv", "Swedish"},
	Tamil:              {"ta", "Tamil"},
	Telugu:             {"te", "Telugu"},
	Thai:               {"th", "Thai"},
	Turkish:            {"tr", "Turkish"},
	Ukrainian:          {"uk", "Ukrainian"},
	Urdu:               {"ur", "Urdu"},
	Vietnamese:         {"vi", "Vietnamese"},
	Welsh:              {"cy", "Welsh"},
	Yiddish:            {"yi", "Yiddish"},
}

// byCode is the reverse of languages, keyed by lower-cased wire code.
var byCode = map[string]Language{}

func init() {
	for lang, info := range languages {
		if info.code != "" {
			byCode[strings.ToLower(info.code)] = lang
		}
	}
	// Codes the service also reports for the same languages.
	byCode["he"] = Hebrew
	byCode["zh"] = ChineseSimplified
	byCode["fil"] = Filipino
}

// Code returns the wire code sent to the service, or "" for the sentinels.
func (l Language) Code() string {
	return languages[l].code
}

// String returns the English name of the language.
func (l Language) String() string {
	if info, ok := languages[l]; ok {
		return info.name
	}
	return "Unknown"
}

// ParseLanguage looks a language up by wire code. "auto" and "" map to
// Automatic. The lookup is case-insensitive.
func ParseLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || code == "auto" {
		return Automatic, true
	}
	lang, ok := byCode[code]
	return lang, ok
}

// Languages returns every concrete language in declaration order.
func Languages() []Language {
	out := make([]Language, 0, len(languages)-2)
	for l := Afrikaans; l <= Yiddish; l++ {
		out = append(out, l)
	}
	return out
}
