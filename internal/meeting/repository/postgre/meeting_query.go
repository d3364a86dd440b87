package postgre

import (
	"fmt"
	"strings"

	"meetbot/internal/meeting/repository"
	"meetbot/internal/model"
)

const meetingColumns = `id, date, title, start_time, end_time, description, location, created_at`

const orderBy = ` ORDER BY date, start_time, id`

type scanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row scanner) (model.Meeting, error) {
	var m model.Meeting
	err := row.Scan(&m.ID, &m.Date, &m.Title, &m.StartTime, &m.EndTime, &m.Description, &m.Location, &m.CreatedAt)
	return m, err
}

// buildListQuery builds the WHERE clause + args for ListMeetings.
func (r *implRepository) buildListQuery(opt repository.ListMeetingsOptions) (string, []any) {
	if opt.Date == "" {
		return "", nil
	}
	return " WHERE date = $1", []any{opt.Date}
}

// buildFindQuery builds the WHERE clause + args for FindMeetings.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildFindQuery(opt repository.FindMeetingsOptions) (string, []any) {
	conditions := []string{`title ILIKE '%' || $1 || '%' ESCAPE '\'`}
	args := []any{escapeLike(opt.TitleFragment)}

	if opt.Date != "" {
		conditions = append(conditions, fmt.Sprintf("date = $%d", len(args)+1))
		args = append(args, opt.Date)
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE metacharacters in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
