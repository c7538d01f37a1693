package durationprofile

import (
	"io/ioutil"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

type hclDocument struct {
	Options *struct {
		// options are free-form so unknown ones can be reported instead of failing decode
		Remain hcl.Body `hcl:",remain"`
	} `hcl:"options,block"`
	I18n *i18nDocument `hcl:"i18n,block"`
}

func LoadHcl(path string) (*Profile, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseHcl(path, content)
}

// filename is used for diagnostics and must end in ".hcl"
func ParseHcl(filename string, content []byte) (*Profile, error) {
	doc := hclDocument{}
	if err := hclsimple.Decode(filename, content, nil, &doc); err != nil {
		return nil, err
	}

	raw := []RawOption{}
	if doc.Options != nil {
		attrs, diags := doc.Options.Remain.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}

		sorted := []*hcl.Attribute{}
		for _, attr := range attrs {
			sorted = append(sorted, attr)
		}
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Range.Start.Byte < sorted[j].Range.Start.Byte
		})

		for _, attr := range sorted {
			value, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, diags
			}

			raw = append(raw, RawOption{
				Key:   attr.Name,
				Value: ctyToGo(value),
			})
		}
	}

	i18n := &i18nDocument{}
	if doc.I18n != nil {
		i18n = doc.I18n
	}

	return &Profile{
		Options: OptionsFromRaw(raw),
		I18n:    i18n.toI18n(),
	}, nil
}

func ctyToGo(value cty.Value) interface{} {
	if value.IsNull() || !value.IsKnown() {
		return nil
	}

	switch value.Type() {
	case cty.Number:
		number, _ := value.AsBigFloat().Float64()
		return number
	case cty.String:
		return value.AsString()
	default:
		// neither a valid precision nor a unit, validation reports it
		return value.Type().FriendlyName()
	}
}
