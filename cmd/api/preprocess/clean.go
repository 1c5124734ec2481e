package preprocess

import (
	"strings"

	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"
)

// Clean 은 분류기에 보낼 텍스트를 만든다.
// markdown 강조와 링크는 글자만 남기고, 연속 공백과 줄바꿈은 공백 하나로 합친다.
// <...> 구간과 URL 은 지우지 않는다. 길이/언어 필터는 Clean 이전의 원문에 적용한다.
func Clean(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	// '<' 를 이스케이프해 두면 inline HTML 로 해석되지 않고 글자 그대로 Text 노드에 남는다.
	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	root := md.Parse([]byte(strings.ReplaceAll(text, "<", `\<`)))

	var sb strings.Builder
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch node.Type {
		case blackfriday.Text, blackfriday.HTMLSpan, blackfriday.HTMLBlock:
			sb.Write(node.Literal)
		case blackfriday.Code, blackfriday.CodeBlock:
			// 코드 구간에서는 백슬래시 이스케이프가 처리되지 않는다.
			sb.WriteString(strings.ReplaceAll(string(node.Literal), `\<`, "<"))
		case blackfriday.Softbreak, blackfriday.Hardbreak:
			sb.WriteByte(' ')
		case blackfriday.Paragraph, blackfriday.Heading, blackfriday.Item, blackfriday.TableCell:
			if !entering {
				sb.WriteByte(' ')
			}
		}
		return blackfriday.GoToNext
	})

	return strings.Join(strings.Fields(html.UnescapeString(sb.String())), " ")
}
