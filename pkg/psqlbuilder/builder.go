package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder использует плейсхолдеры PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT запрос с плейсхолдерами PostgreSQL
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}
