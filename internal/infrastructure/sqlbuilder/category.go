// Package sqlbuilder traduce repository.CategoryQuery a SQL parametrizado para cada dialecto soportado.
//
// Las sentencias se construyen por concatenación de fragmentos fijos; el texto de búsqueda
// siempre viaja como argumento, nunca interpolado.
package sqlbuilder

import (
	"strconv"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Dialect variante de SQL del almacén.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

// CategoryColumns columnas en el orden que esperan los Scan de los repositorios.
const CategoryColumns = "id, name, description, created_at"

// Placeholder devuelve el marcador del argumento n (1-based).
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// likeOperator: ILIKE en Postgres; en SQLite LIKE ya ignora mayúsculas (ASCII).
func (d Dialect) likeOperator() string {
	if d == Postgres {
		return "ILIKE"
	}
	return "LIKE"
}

func (d Dialect) nameCollation() string {
	if d == Postgres {
		return ` COLLATE "C"`
	}
	return ""
}

// EscapeLike escapa los comodines de LIKE para que la búsqueda sea una subcadena literal.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// CategoryWhere devuelve la cláusula WHERE (con espacio inicial) y sus argumentos, o "" sin filtro.
func CategoryWhere(d Dialect, f repository.CategoryFilter) (string, []any) {
	if !f.HasSearch() {
		return "", nil
	}
	pattern := "%" + EscapeLike(f.Search) + "%"
	op := d.likeOperator()
	clause := " WHERE (name " + op + " " + d.Placeholder(1) + ` ESCAPE '\'` +
		" OR description " + op + " " + d.Placeholder(2) + ` ESCAPE '\')`
	return clause, []any{pattern, pattern}
}

// CategoryOrderBy devuelve la cláusula ORDER BY (con espacio inicial). El desempate es siempre id ASC.
func CategoryOrderBy(d Dialect, s entity.SortOrder) string {
	dir := "ASC"
	if s.Descending() {
		dir = "DESC"
	}
	key := "name" + d.nameCollation()
	if s.ByCreatedAt() {
		key = "created_at"
	}
	return " ORDER BY " + key + " " + dir + ", id ASC"
}

// CategoryCountQuery SELECT COUNT(*) sobre el conjunto filtrado.
func CategoryCountQuery(d Dialect, f repository.CategoryFilter) (string, []any) {
	where, args := CategoryWhere(d, f)
	return "SELECT COUNT(*) FROM categories" + where, args
}

// CategoryListQuery SELECT filtrado, ordenado y con LIMIT/OFFSET.
func CategoryListQuery(d Dialect, q repository.CategoryQuery) (string, []any) {
	where, args := CategoryWhere(d, q.Filter)
	pos := len(args) + 1
	query := "SELECT " + CategoryColumns + " FROM categories" + where +
		CategoryOrderBy(d, q.Sort) +
		" LIMIT " + d.Placeholder(pos) + " OFFSET " + d.Placeholder(pos+1)
	return query, append(args, q.Limit, q.Offset)
}

// maxListCapacity tope de la reserva inicial del slice de resultados; el límite real lo da LIMIT.
const maxListCapacity = 100

// ListCapacity capacidad inicial para el slice de una página de tamaño limit.
func ListCapacity(limit int) int {
	return min(max(limit, 0), maxListCapacity)
}
