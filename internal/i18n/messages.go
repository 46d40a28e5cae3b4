package i18n

import "golang.org/x/text/language"

// Message keys used across the application.
const (
	KeyUserAlreadyExists = "user.already.exists"
	KeyEmailAlreadyTaken = "email.already.taken"
	KeyWeakPassword      = "weak.password"
	KeyValidationFailed  = "validation.failed"
	KeyMalformedJSON     = "malformed.json"
	KeyInternalError     = "internal.error"
	KeyHelloWorld        = "hello.world"
	KeyRoot              = "root"
)

var messageCatalogs = map[language.Tag]map[string]string{
	language.English: {
		KeyUserAlreadyExists: "Username already exists",
		KeyEmailAlreadyTaken: "Email already exists",
		KeyWeakPassword: "Password should be at least 8 characters, at most 64 characters, " +
			"contains at least one upper and lower case and at least one special character",
		KeyValidationFailed: "Invalid request payload",
		KeyMalformedJSON:    "Malformed JSON body",
		KeyInternalError:    "Something went wrong",
		KeyHelloWorld:       "Hello World",
		KeyRoot:             "Welcome to the flashcards API",
	},
	language.Polish: {
		KeyUserAlreadyExists: "Nazwa użytkownika jest już zajęta",
		KeyEmailAlreadyTaken: "Adres e-mail jest już zajęty",
		KeyWeakPassword: "Hasło musi mieć od 8 do 64 znaków oraz zawierać wielką literę, " +
			"małą literę, cyfrę i znak specjalny",
		KeyValidationFailed: "Nieprawidłowe dane żądania",
		KeyMalformedJSON:    "Nieprawidłowy dokument JSON",
		KeyInternalError:    "Coś poszło nie tak",
		KeyHelloWorld:       "Witaj świecie",
		KeyRoot:             "Witamy w API flashcards",
	},
}
