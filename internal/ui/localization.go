package ui

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyCallListTab       = "call_list_tab"
	KeyCallScreenTab     = "call_screen_tab"
	KeyExportsTab        = "exports_tab"
	KeyGenerateTab       = "generate_tab"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyExportDirectory   = "export_directory"
	KeyAutoReveal        = "auto_reveal"
	KeyAPIHostname       = "api_hostname"
	KeyAPIBaseURL        = "api_base_url"
	KeyCheckConnection   = "check_connection"
	KeyConnectionOK      = "connection_ok"
	KeyConnectionFailed  = "connection_failed"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyExport            = "export"
	KeyExporting         = "exporting"
	KeyCopyDataURL       = "copy_data_url"
	KeyDataURLCopied     = "data_url_copied"
	KeyExportCompleted   = "export_completed"
	KeyExportFailed      = "export_failed"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyPathCopied        = "path_copied"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
	KeyCopyPath          = "copy_path"
	KeyAddCall           = "add_call"
	KeyEditCall          = "edit_call"
	KeyDelete            = "delete"
	KeyEdit              = "edit"
	KeyName              = "name"
	KeyDirection         = "direction"
	KeyTime              = "time"
	KeyRepeatCount       = "repeat_count"
	KeyChannel           = "channel"
	KeyPleaseEnterName   = "please_enter_name"
	KeyDarkTheme         = "dark_theme"
	KeyShowSearch        = "show_search"
	KeyShowWifi          = "show_wifi"
	KeyHeaderTitle       = "header_title"
	KeyClock             = "clock"
	KeyBattery           = "battery"
	KeyContactName       = "contact_name"
	KeyContactNumber     = "contact_number"
	KeyCallState         = "call_state"
	KeyShowAvatar        = "show_avatar"
	KeyAvatarColor       = "avatar_color"
	KeyPrompt            = "prompt"
	KeyStyle             = "style"
	KeyGenerate          = "generate"
	KeyGenerating        = "generating"
	KeyLoadStyles        = "load_styles"
	KeyNoExports         = "no_exports"
	KeyDirectionIncoming = "direction_incoming"
	KeyDirectionOutgoing = "direction_outgoing"
	KeyDirectionMissed   = "direction_missed"
	KeyStateIncoming     = "state_incoming"
	KeyStateBusy         = "state_busy"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Callshot",
		KeyCallListTab:       "Call list",
		KeyCallScreenTab:     "Call screen",
		KeyExportsTab:        "Exports",
		KeyGenerateTab:       "Generate",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyExportDirectory:   "Export Directory",
		KeyAutoReveal:        "Reveal file after export",
		KeyAPIHostname:       "API Hostname",
		KeyAPIBaseURL:        "API Base URL (override)",
		KeyCheckConnection:   "Check connection",
		KeyConnectionOK:      "API is reachable",
		KeyConnectionFailed:  "API is not reachable",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyExport:            "Export PNG",
		KeyExporting:         "Exporting...",
		KeyCopyDataURL:       "Copy as data URL",
		KeyDataURLCopied:     "Data URL copied to clipboard",
		KeyExportCompleted:   "Export completed",
		KeyExportFailed:      "Export failed",
		KeyErrorOpeningFile:  "Error opening file",
		KeyPathCopied:        "Path copied to clipboard",
		KeyReveal:            "reveal",
		KeyOpen:              "open",
		KeyCopyPath:          "path",
		KeyAddCall:           "Add call",
		KeyEditCall:          "Edit call",
		KeyDelete:            "delete",
		KeyEdit:              "edit",
		KeyName:              "Name or number",
		KeyDirection:         "Direction",
		KeyTime:              "Time",
		KeyRepeatCount:       "Repeat count",
		KeyChannel:           "Channel",
		KeyPleaseEnterName:   "Please enter a name",
		KeyDarkTheme:         "Dark theme",
		KeyShowSearch:        "Search bar",
		KeyShowWifi:          "Wi-Fi indicator",
		KeyHeaderTitle:       "Header title",
		KeyClock:             "Clock",
		KeyBattery:           "Battery",
		KeyContactName:       "Contact name",
		KeyContactNumber:     "Contact number",
		KeyCallState:         "Call state",
		KeyShowAvatar:        "Avatar",
		KeyAvatarColor:       "Avatar color",
		KeyPrompt:            "Prompt",
		KeyStyle:             "Style",
		KeyGenerate:          "Generate",
		KeyGenerating:        "Generating...",
		KeyLoadStyles:        "Load styles",
		KeyNoExports:         "No exports yet",
		KeyDirectionIncoming: "Incoming",
		KeyDirectionOutgoing: "Outgoing",
		KeyDirectionMissed:   "Missed",
		KeyStateIncoming:     "Incoming",
		KeyStateBusy:         "Busy",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Callshot",
		KeyCallListTab:       "Список звонков",
		KeyCallScreenTab:     "Экран вызова",
		KeyExportsTab:        "Экспорт",
		KeyGenerateTab:       "Генерация",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyExportDirectory:   "Папка экспорта",
		KeyAutoReveal:        "Показать файл после экспорта",
		KeyAPIHostname:       "Хост API",
		KeyAPIBaseURL:        "Базовый URL API (вручную)",
		KeyCheckConnection:   "Проверить соединение",
		KeyConnectionOK:      "API доступен",
		KeyConnectionFailed:  "API недоступен",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyExport:            "Экспорт PNG",
		KeyExporting:         "Экспорт...",
		KeyCopyDataURL:       "Копировать как data URL",
		KeyDataURLCopied:     "Data URL скопирован",
		KeyExportCompleted:   "Экспорт завершен",
		KeyExportFailed:      "Ошибка экспорта",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyPathCopied:        "Путь скопирован",
		KeyReveal:            "показать",
		KeyOpen:              "открыть",
		KeyCopyPath:          "путь",
		KeyAddCall:           "Добавить звонок",
		KeyEditCall:          "Редактировать звонок",
		KeyDelete:            "удалить",
		KeyEdit:              "изменить",
		KeyName:              "Имя или номер",
		KeyDirection:         "Тип",
		KeyTime:              "Время",
		KeyRepeatCount:       "Количество",
		KeyChannel:           "Канал",
		KeyPleaseEnterName:   "Пожалуйста, введите имя",
		KeyDarkTheme:         "Темная тема",
		KeyShowSearch:        "Строка поиска",
		KeyShowWifi:          "Индикатор Wi-Fi",
		KeyHeaderTitle:       "Заголовок",
		KeyClock:             "Время на часах",
		KeyBattery:           "Заряд батареи",
		KeyContactName:       "Имя контакта",
		KeyContactNumber:     "Номер контакта",
		KeyCallState:         "Состояние вызова",
		KeyShowAvatar:        "Аватар",
		KeyAvatarColor:       "Цвет аватара",
		KeyPrompt:            "Описание",
		KeyStyle:             "Стиль",
		KeyGenerate:          "Сгенерировать",
		KeyGenerating:        "Генерация...",
		KeyLoadStyles:        "Загрузить стили",
		KeyNoExports:         "Экспортов пока нет",
		KeyDirectionIncoming: "Входящий",
		KeyDirectionOutgoing: "Исходящий",
		KeyDirectionMissed:   "Пропущенный",
		KeyStateIncoming:     "Входящий вызов",
		KeyStateBusy:         "Занято",
	}
}
