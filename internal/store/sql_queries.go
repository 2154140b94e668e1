package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-faved-comments/models"
)

const favedCommentsTable = "faved_comments"

var favedCommentColumns = []string{
	"id",
	"item_id",
	"name",
	"content",
	"up",
	"down",
	"thumb",
	"created",
	"mark",
	"flags",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func partition(owner string, flags models.ContentType) sq.Eq {
	return sq.Eq{"owner": owner, "query_flags": int(flags)}
}

// buildSelectCommentsQuery selects every record of the (owner, flags)
// partition, newest first.
func buildSelectCommentsQuery(owner string, flags models.ContentType) (string, []any, error) {
	return psql.
		Select(favedCommentColumns...).
		From(favedCommentsTable).
		Where(partition(owner, flags)).
		OrderBy("created DESC", "id DESC").
		ToSql()
}

// buildDeleteCommentsQuery clears the (owner, flags) partition.
func buildDeleteCommentsQuery(owner string, flags models.ContentType) (string, []any, error) {
	return psql.
		Delete(favedCommentsTable).
		Where(partition(owner, flags)).
		ToSql()
}

// buildInsertCommentQuery inserts a single record into the partition. A
// duplicate id within one response replaces the earlier row.
func buildInsertCommentQuery(owner string, flags models.ContentType, c models.FavedComment) (string, []any, error) {
	columns := append([]string{"owner", "query_flags"}, favedCommentColumns...)

	return psql.
		Insert(favedCommentsTable).
		Options("OR REPLACE").
		Columns(columns...).
		Values(
			owner,
			int(flags),
			c.ID,
			c.ItemID,
			c.Name,
			c.Content,
			c.Up,
			c.Down,
			c.Thumb,
			unixOrZero(c.Created),
			c.Mark,
			int(c.Flags),
		).
		ToSql()
}

func unixOrZero(ts models.Timestamp) int64 {
	if ts.IsZero() {
		return 0
	}
	return ts.Unix()
}
