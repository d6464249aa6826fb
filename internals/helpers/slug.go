// file: internals/helpers/slug.go
package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// SlugOptions define como checar unicidade do slug no DB.
type SlugOptions struct {
	// Nome da tabela, ex: "capacitacoes"
	Table string
	// Coluna do slug, ex: "capacitacao_slug"
	SlugColumn string
	// Coluna de soft-delete (NULL = ativo). Vazio se não usar.
	SoftDeleteColumn string
	// Tamanho máximo do slug (incluindo sufixo -2, -3, ...). 0 = default.
	MaxLen int
	// Base de fallback quando o input fica vazio após normalizar.
	DefaultBase string
}

// GenerateSlug normaliza uma string para slug:
// - remove acentos (capacitação → capacitacao)
// - lower-case
// - espaços e não-alfanuméricos viram "-"
// - colapsa "-" repetidos e faz trim nas pontas
func GenerateSlug(s string) string {
	s = removeDiacritics(strings.ToLower(strings.TrimSpace(s)))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	reDash := regexp.MustCompile(`-+`)
	return reDash.ReplaceAllString(out, "-")
}

func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func cutToLen(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return strings.Trim(s, "-")
	}
	return strings.Trim(s[:n], "-")
}

func slugTaken(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, errors.New("slug options: table/slug column required")
	}
	q := db.Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate)
	if opts.SoftDeleteColumn != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", opts.SoftDeleteColumn))
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GenerateUniqueSlug gera um slug único a partir de "base" (ou DefaultBase),
// case-insensitive, ignorando registros soft-deletados.
// 1) tenta base; 2) se colidir, tenta base-2, base-3, ...
func GenerateUniqueSlug(db *gorm.DB, opts SlugOptions, base string) (string, error) {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	base = GenerateSlug(strings.TrimSpace(base))
	if base == "" {
		base = GenerateSlug(opts.DefaultBase)
	}
	if base == "" {
		base = "x"
	}
	if len(base) > maxLen {
		base = cutToLen(base, maxLen)
	}

	taken, err := slugTaken(db, opts, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 2; i < 10000; i++ {
		suf := fmt.Sprintf("-%d", i)
		candidate := base
		if len(candidate)+len(suf) > maxLen {
			candidate = cutToLen(candidate, maxLen-len(suf))
			if candidate == "" {
				candidate = "x"
			}
		}
		candidate += suf

		taken, err = slugTaken(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("failed to generate unique slug after many attempts")
}
