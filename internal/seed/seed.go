package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academia/course-portal/internal/pkg/logger"
)

type courseSeed struct {
	title       string
	description string
}

// A small starter catalog so a fresh deployment has something to enroll in.
var defaultCourses = []courseSeed{
	{"Introduction to Computer Science", "Foundations of programming, algorithms and problem solving."},
	{"Linear Algebra", "Vectors, matrices, linear transformations and their applications."},
	{"Database Systems", "Relational modeling, SQL and transaction processing."},
	{"Operating Systems", "Processes, scheduling, memory management and file systems."},
	{"Software Engineering", "Team-based development, testing and delivery practices."},
}

// SeedCourses inserts the default course catalog if the courses table is
// empty. Re-running it against a populated database is a no-op.
func SeedCourses(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count courses: %w", err)
	}

	if count > 0 {
		logger.Debug().Int("courses", count).Msg("Course catalog already populated, skipping seed")
		return nil
	}

	for _, c := range defaultCourses {
		if _, err := pool.Exec(ctx,
			`INSERT INTO courses (title, description) VALUES ($1, $2)`,
			c.title, c.description,
		); err != nil {
			return fmt.Errorf("failed to seed course %q: %w", c.title, err)
		}
	}

	logger.Info().Int("courses", len(defaultCourses)).Msg("Seeded default course catalog")
	return nil
}
