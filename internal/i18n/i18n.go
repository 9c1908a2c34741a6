// Package i18n provides internationalization support for the camp service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the built-in catalogues.
func NewTranslator() *Translator {
	return &Translator{messages: catalogues}
}

// GetTranslator returns the shared translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether the locale has a catalogue.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the preferred supported locale from Accept-Language.
// Only the first language tag is considered ("hi-IN,en;q=0.8" yields "hi").
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	lang := strings.TrimSpace(strings.Split(strings.Split(acceptLang, ",")[0], ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)
	if GetTranslator().Supports(lang) {
		return lang
	}
	return DefaultLocale
}

var catalogues = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyValidation:         "One or more fields are invalid",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyUnauthorized:       "Unauthorized",
		ErrKeyInvalidCredentials: "Invalid username or password",
		ErrKeyNotFound:           "Not found",
		ErrKeyCouponNotFound:     "Coupon not found",
		ErrKeyConflict:           "A record with the same key already exists",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyInvalidToken:       "Invalid or expired token",
		ErrKeyTokenRequired:      "Authentication token is required",
		ErrKeyInvalidID:          "The id must be a positive integer",
		ErrKeyMissingPDF:         "No PDF file provided",
		ErrKeyMethodNotAllowed:   "Only POST requests are allowed",
		ErrKeyMethodNotSupported: "Method not allowed",
		ErrKeyServiceUnavailable: "Service temporarily unavailable",
		ErrKeyTimeout:            "The request took too long",

		SuccessKeyPackageCostsSaved: "Package costs saved successfully",
		SuccessKeyPDFUploaded:       "PDF uploaded successfully!",
		SuccessKeyLoggedOut:         "Logged out successfully",
		SuccessKeyDeleted:           "Deleted successfully",
	},
	"hi": {
		ErrKeyInvalidRequest:     "अमान्य अनुरोध",
		ErrKeyInvalidRequestBody: "अनुरोध का मुख्य भाग अमान्य है",
		ErrKeyValidation:         "एक या अधिक फ़ील्ड अमान्य हैं",
		ErrKeyInternalError:      "एक अप्रत्याशित त्रुटि हुई",
		ErrKeyUnauthorized:       "अनधिकृत",
		ErrKeyInvalidCredentials: "उपयोगकर्ता नाम या पासवर्ड गलत है",
		ErrKeyNotFound:           "नहीं मिला",
		ErrKeyCouponNotFound:     "कूपन नहीं मिला",
		ErrKeyConflict:           "इसी कुंजी वाला रिकॉर्ड पहले से मौजूद है",
		ErrKeyRateLimitExceeded:  "बहुत अधिक अनुरोध, कृपया बाद में पुनः प्रयास करें",
		ErrKeyInvalidToken:       "टोकन अमान्य या समाप्त हो गया है",
		ErrKeyTokenRequired:      "प्रमाणीकरण टोकन आवश्यक है",
		ErrKeyInvalidID:          "आईडी एक धनात्मक पूर्णांक होनी चाहिए",
		ErrKeyMissingPDF:         "कोई PDF फ़ाइल नहीं दी गई",
		ErrKeyMethodNotAllowed:   "केवल POST अनुरोध की अनुमति है",
		ErrKeyMethodNotSupported: "यह विधि अनुमत नहीं है",
		ErrKeyServiceUnavailable: "सेवा अस्थायी रूप से उपलब्ध नहीं है",
		ErrKeyTimeout:            "अनुरोध में बहुत समय लगा",

		SuccessKeyPackageCostsSaved: "पैकेज लागत सफलतापूर्वक सहेजी गई",
		SuccessKeyPDFUploaded:       "PDF सफलतापूर्वक अपलोड हुआ!",
		SuccessKeyLoggedOut:         "सफलतापूर्वक लॉग आउट हुआ",
		SuccessKeyDeleted:           "सफलतापूर्वक हटाया गया",
	},
}
