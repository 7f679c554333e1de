package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// readPPTX collects the text runs of every slide, slides in numeric
// order, one line per text element.
func readPPTX(_ context.Context, path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open pptx archive: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	var slides []string
	for _, file := range reader.File {
		if strings.HasPrefix(file.Name, "ppt/slides/slide") && strings.HasSuffix(file.Name, ".xml") {
			slides = append(slides, file.Name)
		}
	}
	sort.Slice(slides, func(i, j int) bool {
		return slideNumber(slides[i]) < slideNumber(slides[j])
	})

	var parts []string
	for _, name := range slides {
		content, err := zipFileContent(&reader.Reader, name)
		if err != nil {
			return "", err
		}
		parts = append(parts, slideText(content)...)
	}
	return strings.Join(parts, "\n"), nil
}

// slideNumber extracts N from ppt/slides/slideN.xml; malformed names sort
// last.
func slideNumber(name string) int {
	digits := strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml")
	n := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 1 << 30
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// slideText streams the slide XML and collects the character data of
// every <a:t> element.
func slideText(content []byte) []string {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	var parts []string
	depth := 0 // nesting depth inside <a:t>

	for {
		token, err := decoder.Token()
		if err == io.EOF || err != nil {
			return parts
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				depth++
			}
		case xml.EndElement:
			if t.Name.Local == "t" && depth > 0 {
				depth--
			}
		case xml.CharData:
			if depth > 0 {
				if text := string(t); strings.TrimSpace(text) != "" {
					parts = append(parts, text)
				}
			}
		}
	}
}
