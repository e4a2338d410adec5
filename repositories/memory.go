package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"quickshop/models"
)

// In-memory implementations of the store interfaces. They back the service
// and handler tests, and satisfy the same contracts as the pgx repositories
// (merge-on-add, ownership in the update/remove predicates, stable listing
// order by line id).

type InMemoryUserStore struct {
	mu     sync.RWMutex
	nextID int
	users  map[int]*models.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{nextID: 1, users: make(map[int]*models.User)}
}

func (s *InMemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Same arbiter as the unique index on users(username) and users(email).
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return models.ErrDuplicateIdentity
		}
	}
	now := time.Now()
	user.ID = s.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	s.nextID++
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *InMemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, models.ErrInvalidCredentials
}

func (s *InMemoryUserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrUnauthenticated
	}
	found := *u
	return &found, nil
}

func (s *InMemoryUserStore) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type InMemoryProductStore struct {
	mu       sync.RWMutex
	nextID   int
	products map[int]*models.Product
}

func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{nextID: 1, products: make(map[int]*models.Product)}
}

func (s *InMemoryProductStore) FindByID(ctx context.Context, id int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok || !p.IsActive {
		return nil, models.ErrProductNotFound
	}
	found := *p
	return &found, nil
}

func (s *InMemoryProductStore) List(ctx context.Context, q models.ProductQuery) ([]models.Product, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Product{}
	for _, p := range s.products {
		if !p.IsActive {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
			continue
		}
		if q.MinPrice > 0 && p.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		matched = append(matched, *p)
	}

	switch q.Sort {
	case "name_asc":
		sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	case "name_desc":
		sort.Slice(matched, func(i, j int) bool { return matched[i].Name > matched[j].Name })
	case "price_asc":
		sort.Slice(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case "price_desc":
		sort.Slice(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	default:
		sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	}

	total := len(matched)
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (s *InMemoryProductStore) Create(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	product.ID = s.nextID
	product.IsActive = true
	product.CreatedAt = now
	product.UpdatedAt = now
	s.nextID++
	stored := *product
	s.products[product.ID] = &stored
	return nil
}

func (s *InMemoryProductStore) Update(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return models.ErrProductNotFound
	}
	product.UpdatedAt = time.Now()
	stored := *product
	s.products[product.ID] = &stored
	return nil
}

func (s *InMemoryProductStore) Deactivate(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return models.ErrProductNotFound
	}
	p.IsActive = false
	p.UpdatedAt = time.Now()
	return nil
}

type InMemoryCartStore struct {
	mu     sync.Mutex
	nextID int
	lines  map[int]*models.CartLine
}

func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{nextID: 1, lines: make(map[int]*models.CartLine)}
}

func (s *InMemoryCartStore) AddLine(ctx context.Context, userID, productID, quantity int) (*models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for _, line := range s.lines {
		if line.UserID == userID && line.ProductID == productID {
			line.Quantity += quantity
			line.UpdatedAt = now
			merged := *line
			return &merged, nil
		}
	}
	line := &models.CartLine{
		ID:        s.nextID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	s.lines[line.ID] = line
	created := *line
	return &created, nil
}

func (s *InMemoryCartStore) UpdateLine(ctx context.Context, userID, lineID, quantity int) (*models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line, ok := s.lines[lineID]
	if !ok || line.UserID != userID {
		return nil, models.ErrLineNotFound
	}
	line.Quantity = quantity
	line.UpdatedAt = time.Now()
	updated := *line
	return &updated, nil
}

func (s *InMemoryCartStore) RemoveLine(ctx context.Context, userID, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, line := range s.lines {
		if line.UserID == userID && line.ProductID == productID {
			delete(s.lines, id)
			return nil
		}
	}
	return models.ErrLineNotFound
}

func (s *InMemoryCartStore) ListLines(ctx context.Context, userID int) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := []models.CartLine{}
	for _, line := range s.lines {
		if line.UserID == userID {
			lines = append(lines, *line)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines, nil
}
