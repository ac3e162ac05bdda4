package menu

import "strings"

// Service orchestrates catalog operations. All derived views (search results,
// category listings) are recomputed from the repository on every call rather
// than cached.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load replaces the catalog contents with the built-in menu. Calling it again
// simply reloads the same data.
func (s *Service) Load() {
	// static data, no error path
	_ = s.repo.Reset(DefaultMenu())
}

func (s *Service) List() []Item {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Item, error) {
	return s.repo.GetByID(id)
}

// Search returns items whose name contains the query, case-insensitively.
// Catalog order is preserved; the result may be empty.
func (s *Service) Search(query string) []Item {
	q := strings.ToLower(query)
	out := make([]Item, 0)
	for _, it := range s.repo.List() {
		if strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, it)
		}
	}
	return out
}

// ByCategory returns items whose category matches exactly.
func (s *Service) ByCategory(category string) []Item {
	out := make([]Item, 0)
	for _, it := range s.repo.List() {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen catalog order.
func (s *Service) Categories() []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, it := range s.repo.List() {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
