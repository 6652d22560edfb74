package textparse

import "regexp"

var (
	hashtagRe = regexp.MustCompile(`#(\w+)`)
	mentionRe = regexp.MustCompile(`@([A-Za-z]+(?: [A-Za-z]+)*)`)
)

// Hashtags возвращает все #теги описания в порядке появления, дубликаты сохраняются
func Hashtags(description string) []string {
	matches := hashtagRe.FindAllStringSubmatch(description, -1)

	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}

	return tags
}

// Mentions возвращает все @упоминания описания в порядке появления.
// Имя может состоять из нескольких слов, разделённых пробелом: "@John Doe".
// Сопоставление с реальными пользователями происходит уже в сервисе постов.
func Mentions(description string) []string {
	matches := mentionRe.FindAllStringSubmatch(description, -1)

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}

	return names
}
