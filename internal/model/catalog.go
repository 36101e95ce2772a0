package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// RepairAction - вид ремонта
type RepairAction struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DeviceKey - нормализованный ключ (категория, бренд, модель) для списков ремонтов конкретного устройства
type DeviceKey struct {
	Category Category
	Brand    string
	Model    string
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// String возвращает ключ в формате category_brand_model, пробельные последовательности заменены на "_"
func (k DeviceKey) String() string {
	return whitespaceRun.ReplaceAllString(fmt.Sprintf("%s_%s_%s", k.Category, k.Brand, k.Model), "_")
}

// Series - именованная серия моделей бренда
type Series struct {
	Name   string
	Models []string
}

// ModelList - список моделей бренда в категории: либо плоский, либо сгруппированный по сериям.
// Сериализуется как JSON-массив или JSON-объект (порядок серий сохраняется).
type ModelList struct {
	grouped bool
	flat    []string
	series  []Series
}

// FlatModels создаёт плоский список моделей
func FlatModels(models ...string) ModelList {
	return ModelList{flat: append([]string{}, models...)}
}

// GroupedModels создаёт сгруппированный список моделей
func GroupedModels(series ...Series) ModelList {
	ml := ModelList{grouped: true}
	for _, s := range series {
		ml.series = append(ml.series, Series{Name: s.Name, Models: append([]string{}, s.Models...)})
	}
	return ml
}

// IsGrouped сообщает, разбит ли список на серии
func (ml ModelList) IsGrouped() bool {
	return ml.grouped
}

// Flat возвращает плоский список (nil для сгруппированного)
func (ml ModelList) Flat() []string {
	if ml.grouped {
		return nil
	}
	return append([]string{}, ml.flat...)
}

// Series возвращает серии (nil для плоского списка)
func (ml ModelList) Series() []Series {
	if !ml.grouped {
		return nil
	}
	return ml.Clone().series
}

// SeriesModels возвращает модели серии
func (ml ModelList) SeriesModels(name string) ([]string, bool) {
	for _, s := range ml.series {
		if s.Name == name {
			return append([]string{}, s.Models...), true
		}
	}
	return nil, false
}

// All возвращает все модели подряд независимо от представления
func (ml ModelList) All() []string {
	if !ml.grouped {
		return ml.Flat()
	}
	var all []string
	for _, s := range ml.series {
		all = append(all, s.Models...)
	}
	return all
}

// Len возвращает количество моделей
func (ml ModelList) Len() int {
	return len(ml.All())
}

// Clone делает глубокую копию
func (ml ModelList) Clone() ModelList {
	if !ml.grouped {
		return FlatModels(ml.flat...)
	}
	return GroupedModels(ml.series...)
}

// MarshalJSON сериализует список в массив или объект серий
func (ml ModelList) MarshalJSON() ([]byte, error) {
	if !ml.grouped {
		if ml.flat == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(ml.flat)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range ml.series {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Name)
		if err != nil {
			return nil, err
		}
		models := s.Models
		if models == nil {
			models = []string{}
		}
		value, err := json.Marshal(models)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON читает массив или объект серий, сохраняя порядок ключей
func (ml *ModelList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*ml = ModelList{}
		return nil
	}

	if trimmed[0] == '[' {
		var flat []string
		if err := json.Unmarshal(trimmed, &flat); err != nil {
			return fmt.Errorf("decode flat models: %w", err)
		}
		*ml = ModelList{flat: flat}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode series: %w", err)
	}

	result := ModelList{grouped: true}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode series name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode series name: unexpected token %v", tok)
		}
		var models []string
		if err := dec.Decode(&models); err != nil {
			return fmt.Errorf("decode series %q: %w", name, err)
		}
		result.series = append(result.series, Series{Name: name, Models: models})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode series: %w", err)
	}

	*ml = result
	return nil
}

// Catalog - снимок каталога: бренды, модели, ремонты. Ключ хранения repair_data_v5.
type Catalog struct {
	Brands       map[string][]string             `json:"brands"`
	Models       map[string]map[string]ModelList `json:"models"` // brand -> category -> models
	Repairs      []RepairAction                  `json:"repairs"`
	ModelRepairs map[string][]RepairAction       `json:"modelRepairs"` // DeviceKey.String() -> repairs
}

// Clone делает глубокую копию каталога
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Brands:       make(map[string][]string, len(c.Brands)),
		Models:       make(map[string]map[string]ModelList, len(c.Models)),
		Repairs:      append([]RepairAction{}, c.Repairs...),
		ModelRepairs: make(map[string][]RepairAction, len(c.ModelRepairs)),
	}
	for cat, brands := range c.Brands {
		out.Brands[cat] = append([]string{}, brands...)
	}
	for brand, byCategory := range c.Models {
		inner := make(map[string]ModelList, len(byCategory))
		for cat, list := range byCategory {
			inner[cat] = list.Clone()
		}
		out.Models[brand] = inner
	}
	for key, repairs := range c.ModelRepairs {
		out.ModelRepairs[key] = append([]RepairAction{}, repairs...)
	}
	return out
}

// AppendFlat добавляет модель в плоский список. Для сгруппированного списка ничего не делает.
func (ml ModelList) AppendFlat(name string) (ModelList, bool) {
	if ml.grouped || contains(ml.flat, name) {
		return ml, false
	}
	out := ml.Clone()
	out.flat = append(out.flat, name)
	return out, true
}

// AddSeries создаёт новую пустую серию. Плоский список при этом сбрасывается:
// переход flat -> grouped не переносит старые модели.
func (ml ModelList) AddSeries(name string) ModelList {
	out := ml.Clone()
	if !out.grouped {
		out = ModelList{grouped: true}
	}
	for _, s := range out.series {
		if s.Name == name {
			return out
		}
	}
	out.series = append(out.series, Series{Name: name, Models: []string{}})
	return out
}

// AppendToSeries добавляет модель в серию, создавая серию при необходимости.
// Плоский список сбрасывается так же, как в AddSeries.
func (ml ModelList) AppendToSeries(series, name string) ModelList {
	out := ml.AddSeries(series)
	for i := range out.series {
		if out.series[i].Name != series {
			continue
		}
		if !contains(out.series[i].Models, name) {
			out.series[i].Models = append(out.series[i].Models, name)
		}
	}
	return out
}

// Remove удаляет модель: из плоского списка, либо из указанной серии сгруппированного
func (ml ModelList) Remove(name, series string) (ModelList, bool) {
	out := ml.Clone()
	if !out.grouped {
		filtered, removed := without(out.flat, name)
		out.flat = filtered
		return out, removed
	}
	if series == "" {
		return out, false
	}
	for i := range out.series {
		if out.series[i].Name == series {
			filtered, removed := without(out.series[i].Models, name)
			out.series[i].Models = filtered
			return out, removed
		}
	}
	return out, false
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func without(list []string, value string) ([]string, bool) {
	out := make([]string, 0, len(list))
	removed := false
	for _, v := range list {
		if v == value {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out, removed
}

// FilterNames оставляет строки, содержащие term без учёта регистра. Пустой term пропускает всё.
func FilterNames(names []string, term string) []string {
	needle := strings.ToLower(term)
	out := make([]string, 0, len(names))
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), needle) {
			out = append(out, n)
		}
	}
	return out
}

// Filter фильтрует модели по подстроке, сохраняя представление. Серии без совпадений скрываются.
func (ml ModelList) Filter(term string) ModelList {
	if term == "" {
		return ml.Clone()
	}
	if !ml.grouped {
		return FlatModels(FilterNames(ml.flat, term)...)
	}
	var series []Series
	for _, s := range ml.series {
		if matched := FilterNames(s.Models, term); len(matched) > 0 {
			series = append(series, Series{Name: s.Name, Models: matched})
		}
	}
	return GroupedModels(series...)
}
