package durationprofile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/function61/gokit/jsonfile"
)

type jsonDocument struct {
	Options json.RawMessage `json:"options"`
	I18n    i18nDocument    `json:"i18n"`
}

func LoadJson(path string) (*Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseJson(file)
}

func ParseJson(content io.Reader) (*Profile, error) {
	doc := jsonDocument{}
	if err := jsonfile.Unmarshal(content, &doc, true); err != nil {
		return nil, err
	}

	raw, err := orderedJsonObject(doc.Options)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Options: OptionsFromRaw(raw),
		I18n:    doc.I18n.toI18n(),
	}, nil
}

// decoding into a map would lose key order, so walk the tokens instead
func orderedJsonObject(content json.RawMessage) ([]RawOption, error) {
	raw := []RawOption{}

	if len(content) == 0 || string(content) == "null" {
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader(content))

	start, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := start.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("options must be an object")
	}

	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, err
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		raw = append(raw, RawOption{
			Key:   keyToken.(string),
			Value: value,
		})
	}

	return raw, nil
}
