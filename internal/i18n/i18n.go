// Package i18n serves the supported-language list and static UI string
// tables. Tables live in the binary; there is no translation backend.
package i18n

// Language describes one supported UI language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Flag       string `json:"flag"`
	RTL        bool   `json:"rtl"`
}

// Languages lists every language the UI can be switched to. Translation
// tables exist for a subset; the rest fall back to English.
var Languages = []Language{
	{Code: "en", Name: "English", NativeName: "English", Flag: "\U0001F1FA\U0001F1F8"},
	{Code: "af", Name: "Afrikaans", NativeName: "Afrikaans", Flag: "\U0001F1FF\U0001F1E6"},
	{Code: "zu", Name: "Zulu", NativeName: "isiZulu", Flag: "\U0001F1FF\U0001F1E6"},
	{Code: "xh", Name: "Xhosa", NativeName: "isiXhosa", Flag: "\U0001F1FF\U0001F1E6"},
	{Code: "st", Name: "Sotho", NativeName: "Sesotho", Flag: "\U0001F1FF\U0001F1E6"},
	{Code: "tn", Name: "Tswana", NativeName: "Setswana", Flag: "\U0001F1FF\U0001F1E6"},
	{Code: "es", Name: "Spanish", NativeName: "Español", Flag: "\U0001F1EA\U0001F1F8"},
	{Code: "fr", Name: "French", NativeName: "Français", Flag: "\U0001F1EB\U0001F1F7"},
	{Code: "de", Name: "German", NativeName: "Deutsch", Flag: "\U0001F1E9\U0001F1EA"},
	{Code: "ar", Name: "Arabic", NativeName: "العربية", Flag: "\U0001F1F8\U0001F1E6", RTL: true},
}

// Translations is a per-section string table for one locale.
type Translations map[string]map[string]string

var tables = map[string]Translations{
	"en": {
		"common": {
			"loading": "Loading", "error": "Error", "success": "Success",
			"cancel": "Cancel", "confirm": "Confirm", "save": "Save",
			"delete": "Delete", "edit": "Edit", "create": "Create",
			"search": "Search", "filter": "Filter", "sort": "Sort",
			"next": "Next", "previous": "Previous", "close": "Close",
		},
		"navigation": {
			"home": "Home", "marketplace": "Marketplace",
			"collection": "My Collection", "themes": "Themes",
			"nft": "NFT", "profile": "Profile", "settings": "Settings",
		},
		"stamps": {
			"title": "Title", "description": "Description",
			"category": "Category", "rarity": "Rarity",
			"condition": "Condition", "price": "Price",
			"addToCollection": "Add to Collection", "mintAsNFT": "Mint as NFT",
		},
	},
	"af": {
		"common": {
			"loading": "Laai", "error": "Fout", "success": "Sukses",
			"cancel": "Kanselleer", "confirm": "Bevestig", "save": "Stoor",
			"delete": "Verwyder", "edit": "Wysig", "create": "Skep",
			"search": "Soek", "filter": "Filtreer", "sort": "Sorteer",
			"next": "Volgende", "previous": "Vorige", "close": "Maak toe",
		},
		"navigation": {
			"home": "Tuis", "marketplace": "Mark",
			"collection": "My Versameling", "themes": "Temas",
			"nft": "NFT", "profile": "Profiel", "settings": "Instellings",
		},
		"stamps": {
			"title": "Titel", "description": "Beskrywing",
			"category": "Kategorie", "rarity": "Seldsaamheid",
			"condition": "Toestand", "price": "Prys",
			"addToCollection": "Voeg by Versameling", "mintAsNFT": "Munt as NFT",
		},
	},
	"zu": {
		"common": {
			"loading": "Iyalayisha", "error": "Iphutha", "success": "Impumelelo",
			"cancel": "Khansela", "confirm": "Qinisekisa", "save": "Londoloza",
			"delete": "Susa", "edit": "Hlela", "create": "Dala",
			"search": "Sesha", "filter": "Hlunga", "sort": "Hlunga ngokulandelana",
			"next": "Okulandelayo", "previous": "Okwedlule", "close": "Vala",
		},
		"navigation": {
			"home": "Ikhaya", "marketplace": "Imakethe",
			"collection": "Iqoqo Lami", "themes": "Izindikimba",
			"nft": "NFT", "profile": "Iphrofayela", "settings": "Izilungiselelo",
		},
		"stamps": {
			"title": "Isihloko", "description": "Incazelo",
			"category": "Isigaba", "rarity": "Ukungavami",
			"condition": "Isimo", "price": "Intengo",
			"addToCollection": "Engeza Eqoqweni", "mintAsNFT": "Khiqiza njenge-NFT",
		},
	},
}

// Table returns the string table for a locale, and whether one exists.
func Table(locale string) (Translations, bool) {
	t, ok := tables[locale]
	return t, ok
}
