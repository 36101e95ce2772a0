package model

import (
	"encoding/json"
	"fmt"
)

// SiteContent - редактируемые тексты. Ключ хранения site_content.
type SiteContent struct {
	Texts        map[string]string
	SectionOrder []string
}

// Clone делает глубокую копию
func (c *SiteContent) Clone() *SiteContent {
	out := &SiteContent{
		Texts:        make(map[string]string, len(c.Texts)),
		SectionOrder: append([]string{}, c.SectionOrder...),
	}
	for k, v := range c.Texts {
		out.Texts[k] = v
	}
	return out
}

const sectionOrderKey = "sectionOrder"

// MarshalJSON сериализует контент в плоский объект id -> текст плюс sectionOrder
func (c SiteContent) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(c.Texts)+1)
	for k, v := range c.Texts {
		flat[k] = v
	}
	order := c.SectionOrder
	if order == nil {
		order = []string{}
	}
	flat[sectionOrderKey] = order
	return json.Marshal(flat)
}

// UnmarshalJSON читает плоский объект. Нестроковые значения (кроме sectionOrder) пропускаются.
func (c *SiteContent) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode site content: %w", err)
	}

	out := SiteContent{Texts: make(map[string]string, len(raw))}
	for k, v := range raw {
		if k == sectionOrderKey {
			if err := json.Unmarshal(v, &out.SectionOrder); err != nil {
				return fmt.Errorf("decode section order: %w", err)
			}
			continue
		}
		var text string
		if err := json.Unmarshal(v, &text); err != nil {
			continue
		}
		out.Texts[k] = text
	}

	*c = out
	return nil
}
