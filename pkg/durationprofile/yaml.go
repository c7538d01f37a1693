package durationprofile

import (
	"fmt"
	"io/ioutil"

	"github.com/go-yaml/yaml"
)

type yamlDocument struct {
	// MapSlice keeps document order, so unknown options are reported in that order
	Options yaml.MapSlice `yaml:"options"`
	I18n    i18nDocument  `yaml:"i18n"`
}

func LoadYaml(path string) (*Profile, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseYaml(content)
}

func ParseYaml(content []byte) (*Profile, error) {
	doc := yamlDocument{}
	if err := yaml.UnmarshalStrict(content, &doc); err != nil {
		return nil, err
	}

	raw := []RawOption{}
	for _, item := range doc.Options {
		raw = append(raw, RawOption{
			Key:   fmt.Sprintf("%v", item.Key),
			Value: item.Value,
		})
	}

	return &Profile{
		Options: OptionsFromRaw(raw),
		I18n:    doc.I18n.toI18n(),
	}, nil
}
