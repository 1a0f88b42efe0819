package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/xilec/ruvox/core"
)

// foldAccents strips combining diacritics after NFD decomposition, so an
// accented term like "café" folds to "cafe" before dictionary lookup or
// transliteration.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// englishDictionary gives the conventional Russian spoken pronunciation
// for common IT and technical English words, looked up case-insensitively
// after accent folding.
var englishDictionary = map[string]string{
	"api": "эй пи ай", "app": "апп", "backend": "бэкенд", "bug": "баг",
	"build": "билд", "bundle": "бандл", "byte": "байт", "cache": "кэш",
	"callback": "колбэк", "client": "клиент", "cloud": "клауд",
	"cluster": "кластер", "code": "код", "commit": "коммит",
	"compiler": "компилятор", "config": "конфиг", "container": "контейнер",
	"cookie": "куки", "cpu": "сипиюшка", "data": "дата", "database": "база данных",
	"debug": "дебаг", "deploy": "деплой", "deployment": "деплоймент",
	"device": "девайс", "docker": "докер", "email": "имейл", "endpoint": "эндпоинт",
	"engine": "энджин", "error": "ошибка", "event": "ивент", "file": "файл",
	"firmware": "прошивка", "framework": "фреймворк", "frontend": "фронтенд",
	"function": "функция", "gateway": "гейтвей", "git": "гит", "hash": "хэш",
	"header": "хедер", "host": "хост", "index": "индекс", "input": "инпут",
	"interface": "интерфейс", "kernel": "ядро", "key": "ключ", "kit": "кит",
	"layer": "слой", "library": "библиотека", "link": "ссылка", "load": "лоад",
	"log": "лог", "login": "логин", "loop": "цикл", "memory": "память",
	"merge": "мерж", "method": "метод", "middleware": "миддлварь",
	"module": "модуль", "network": "сеть", "node": "нода", "null": "нал",
	"output": "аутпут", "package": "пакет", "parser": "парсер",
	"password": "пароль", "patch": "патч", "path": "путь", "payload": "пейлоад",
	"pipeline": "пайплайн", "pixel": "пиксель", "plugin": "плагин",
	"pointer": "указатель", "pool": "пул", "port": "порт", "process": "процесс",
	"protocol": "протокол", "proxy": "прокси", "push": "пуш", "query": "запрос",
	"queue": "очередь", "rebase": "ребейз", "register": "регистр",
	"release": "релиз", "repo": "репозиторий", "request": "запрос",
	"response": "ответ", "router": "роутер", "runtime": "рантайм",
	"scope": "скоуп", "script": "скрипт", "server": "сервер", "service": "сервис",
	"session": "сессия", "shell": "шелл", "signal": "сигнал", "socket": "сокет",
	"source": "исходник", "stack": "стек", "stage": "стейдж", "state": "стейт",
	"storage": "хранилище", "stream": "стрим", "string": "строка",
	"struct": "структура", "sync": "синхронизация", "table": "таблица",
	"tag": "тег", "task": "задача", "template": "шаблон", "test": "тест",
	"thread": "поток", "timeout": "таймаут", "token": "токен", "trace": "трейс",
	"transaction": "транзакция", "tuple": "кортеж", "upload": "аплоад",
	"user": "пользователь", "value": "значение", "variable": "переменная",
	"vector": "вектор", "worker": "воркер", "workflow": "воркфлоу",
}

// englishPhrases gives the spoken form of multi-word technical phrases
// that should not be translated word by word.
var englishPhrases = map[string]string{
	"pull request": "пул реквест",
	"merge request": "мерж реквест",
	"machine learning": "машинное обучение",
	"open source": "опен сорс",
	"dry run": "драй ран",
	"load balancer": "балансировщик нагрузки",
}

// EnglishPhrase looks up a multi-word phrase, returning the spoken form
// and true if found.
func EnglishPhrase(text string) (string, bool) {
	v, ok := englishPhrases[strings.ToLower(strings.Join(strings.Fields(text), " "))]
	return v, ok
}

// digraphTransliteration holds multi-letter English sequences that read
// as a single Cyrillic sound, checked before the single-letter fallback
// table.
var digraphTransliteration = []struct {
	from, to string
}{
	{"tion", "шн"}, {"sion", "жн"}, {"ough", "оу"}, {"augh", "о"},
	{"ch", "ч"}, {"sh", "ш"}, {"ph", "ф"}, {"th", "з"}, {"ck", "к"},
	{"qu", "кв"}, {"wh", "в"}, {"ng", "нг"}, {"oo", "у"}, {"ee", "и"},
	{"ea", "и"}, {"ai", "эй"}, {"ay", "эй"}, {"oy", "ой"}, {"ey", "эй"},
}

// singleLetterTransliteration is the fallback letter-by-letter English to
// Cyrillic mapping used once digraphs are exhausted.
var singleLetterTransliteration = map[rune]string{
	'a': "а", 'b': "б", 'c': "к", 'd': "д", 'e': "е", 'f': "ф", 'g': "г",
	'h': "х", 'i': "и", 'j': "дж", 'k': "к", 'l': "л", 'm': "м", 'n': "н",
	'o': "о", 'p': "п", 'q': "к", 'r': "р", 's': "с", 't': "т", 'u': "у",
	'v': "в", 'w': "в", 'x': "кс", 'y': "й", 'z': "з",
}

// Transliterate folds accents then spells word letter by letter,
// preferring digraphTransliteration matches over single letters, for
// English words absent from englishDictionary and customTerms.
func Transliterate(word string) string {
	folded, _, err := transform.String(foldAccents, word)
	if err != nil {
		folded = word
	}
	lower := strings.ToLower(folded)

	var out strings.Builder
	runes := []rune(lower)
	for i := 0; i < len(runes); {
		matched := false
		for _, d := range digraphTransliteration {
			n := len(d.from)
			if i+n <= len(runes) && string(runes[i:i+n]) == d.from {
				out.WriteString(d.to)
				i += n
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if cy, ok := singleLetterTransliteration[runes[i]]; ok {
			out.WriteString(cy)
		} else {
			out.WriteRune(runes[i])
		}
		i++
	}
	return out.String()
}

// EnglishWord spells an EnglishWord token: custom dictionary entries from
// config take priority, then the built-in dictionary, then a single
// Latin letter is spelled by its letter name, and anything else falls
// back to letter-by-letter transliteration. A word that falls through to
// transliteration is recorded in the unknown-words diagnostic set.
func EnglishWord(text string, customTerms map[string]string, diag *core.Diagnostics) string {
	if custom, ok := lookupCustom(text, customTerms); ok {
		return custom
	}

	lower := strings.ToLower(text)
	if folded, _, err := transform.String(foldAccents, lower); err == nil {
		lower = folded
	}
	if word, ok := englishDictionary[lower]; ok {
		return word
	}

	if len([]rune(text)) == 1 {
		return Abbreviation(text, nil)
	}

	if diag != nil {
		diag.RecordUnknownWord(lower)
	}
	return Transliterate(text)
}
