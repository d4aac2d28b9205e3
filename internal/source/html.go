package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// элементы, после которых начинается новая строка
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// HTMLText возвращает видимый текст страницы: скрипты и стили удаляются,
// блочные элементы разделяются переводами строк, пробелы внутри строки
// схлопываются. Переводы строк важны: последовательность упоминания
// транспортного средства не переходит через них.
func HTMLText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, template, head").Remove()

	var sb strings.Builder
	collectText(doc.Selection, &sb)

	var lines []string
	for _, line := range strings.Split(sb.String(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func collectText(sel *goquery.Selection, sb *strings.Builder) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		node := child.Get(0)
		switch node.Type {
		case html.TextNode:
			sb.WriteString(strings.Map(func(r rune) rune {
				if r == '\n' || r == '\r' {
					return ' '
				}
				return r
			}, node.Data))
		case html.ElementNode, html.DocumentNode:
			block := blockElements[node.Data]
			if block {
				sb.WriteByte('\n')
			}
			collectText(child, sb)
			if block {
				sb.WriteByte('\n')
			} else {
				// соседние строчные элементы не должны склеиваться
				sb.WriteByte(' ')
			}
		}
	})
}
