// Package listing monta a página exibida nas tabelas do painel a partir da
// coleção completa devolvida pelo backend: filtro, busca, ordenação e paginação
// acontecem em memória.
package listing

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-admin-api/internal/domain"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Query são os parâmetros de tabela enviados pelo painel
type Query struct {
	Page     int
	PageSize int
	Sort     string
	Order    string
	Search   string
	Filters  map[string]string
}

// Page é a fatia da coleção exibida na tabela
type Page[T any] struct {
	Items        []T            `json:"items"`
	Total        int            `json:"total"`
	Page         int            `json:"page"`
	PageSize     int            `json:"page_size"`
	TotalPages   int            `json:"total_pages"`
	EmptyMessage string         `json:"empty_message,omitempty"`
	Notice       *domain.Notice `json:"notice,omitempty"`
}

// Empty devolve a página vazia que acompanha um erro de busca
func Empty[T any](q Query, emptyMessage string, notice domain.Notice) Page[T] {
	q = q.normalized(DefaultPageSize)
	return Page[T]{
		Items:        make([]T, 0),
		Page:         1,
		PageSize:     q.PageSize,
		EmptyMessage: emptyMessage,
		Notice:       &notice,
	}
}

func (q Query) normalized(defaultPageSize int) Query {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	q.Order = strings.ToLower(strings.TrimSpace(q.Order))
	q.Search = strings.ToLower(strings.TrimSpace(q.Search))
	return q
}

// WithDefaultPageSize aplica o tamanho de página configurado quando o painel não informa
func (q Query) WithDefaultPageSize(size int) Query {
	if q.PageSize <= 0 {
		q.PageSize = size
	}
	return q
}

// Build aplica filtros, busca e ordenação sobre rows e recorta a página pedida
func Build[T any](rows []T, q Query, emptyMessage string) Page[T] {
	q = q.normalized(DefaultPageSize)

	flat := flatten(rows)

	indexes := make([]int, 0, len(rows))
	for i := range rows {
		if matches(flat[i], q) {
			indexes = append(indexes, i)
		}
	}

	if q.Sort != "" {
		desc := q.Order == OrderDesc
		sort.SliceStable(indexes, func(a, b int) bool {
			cmp := compare(flat[indexes[a]][q.Sort], flat[indexes[b]][q.Sort])
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	total := len(indexes)
	totalPages := int(math.Ceil(float64(total) / float64(q.PageSize)))
	if totalPages > 0 && q.Page > totalPages {
		q.Page = totalPages
	}

	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]T, 0, end-start)
	for _, idx := range indexes[start:end] {
		items = append(items, rows[idx])
	}

	page := Page[T]{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages,
	}
	if total == 0 {
		page.EmptyMessage = emptyMessage
	}

	return page
}

// flatten converte cada linha em mapa usando os nomes JSON dos campos
func flatten[T any](rows []T) []map[string]interface{} {
	flat := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		fields := map[string]interface{}{}
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName: "json",
			Result:  &fields,
		})
		if err == nil {
			err = decoder.Decode(row)
		}
		if err != nil {
			logrus.WithError(err).Debug("listing: linha não pôde ser convertida para filtro")
		}
		flattenTimes(reflect.ValueOf(row), fields)
		flat[i] = fields
	}
	return flat
}

var timeType = reflect.TypeOf(time.Time{})

// flattenTimes troca os campos time.Time (que o mapstructure transforma em mapa vazio)
// por texto RFC3339 em UTC, que ordena cronologicamente e aceita busca por "2026"
func flattenTimes(row reflect.Value, fields map[string]interface{}) {
	for row.Kind() == reflect.Pointer {
		if row.IsNil() {
			return
		}
		row = row.Elem()
	}
	if row.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < row.NumField(); i++ {
		field := row.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		value := row.Field(i)
		switch {
		case field.Type == timeType:
			fields[name] = value.Interface().(time.Time).UTC().Format(time.RFC3339)
		case field.Type.Kind() == reflect.Pointer && field.Type.Elem() == timeType:
			if value.IsNil() {
				fields[name] = nil
				continue
			}
			fields[name] = value.Elem().Interface().(time.Time).UTC().Format(time.RFC3339)
		}
	}
}

func matches(fields map[string]interface{}, q Query) bool {
	for field, expected := range q.Filters {
		value, ok := fields[field]
		if !ok || !strings.EqualFold(text(value), strings.TrimSpace(expected)) {
			return false
		}
	}

	if q.Search == "" {
		return true
	}

	for _, value := range fields {
		if !searchable(value) {
			continue
		}
		if strings.Contains(strings.ToLower(text(value)), q.Search) {
			return true
		}
	}

	return false
}

func text(value interface{}) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// searchable aceita textos e números, inclusive tipos nomeados como domain.UnitStatus
func searchable(value interface{}) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func number(value interface{}) (float64, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

// compare ordena números pelo valor, booleanos com false primeiro e o resto como texto.
// Valores ausentes vão para o fim.
func compare(a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	if na, ok := number(a); ok {
		if nb, ok := number(b); ok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
			return 0
		}
	}

	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			}
			return 1
		}
	}

	return strings.Compare(strings.ToLower(text(a)), strings.ToLower(text(b)))
}
