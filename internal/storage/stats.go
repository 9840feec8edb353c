package storage

import "context"

// Dashboard counters. Admin stats scope by organization alone; member stats
// additionally scope by assignee. "Open" is a literal issue status value.

func (s *Storage) CountClients(ctx context.Context, orgID int64) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM clients WHERE org_id = $1`, orgID)
}

func (s *Storage) CountOpenIssues(ctx context.Context, orgID int64) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM issues WHERE org_id = $1 AND status = 'Open'`, orgID)
}

func (s *Storage) CountClientsAssignedTo(ctx context.Context, orgID, userID int64) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM clients WHERE org_id = $1 AND assigned_to_user_id = $2`, orgID, userID)
}

func (s *Storage) CountOpenIssuesAssignedTo(ctx context.Context, orgID, userID int64) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM issues WHERE org_id = $1 AND assigned_to_user_id = $2 AND status = 'Open'`, orgID, userID)
}

func (s *Storage) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
