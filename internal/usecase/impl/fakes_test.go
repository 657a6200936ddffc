package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// fakeUserRepo is an in-memory UserRepository keyed by hex object id.
type fakeUserRepo struct {
	users   map[string]*entity.User
	byEmail map[string]*entity.User

	createErr error
	updateErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, taken := r.byEmail[user.Email]; taken {
		return repository.ErrEmailTaken
	}

	user.ID = bson.NewObjectID()
	r.users[user.ID.Hex()] = user
	r.byEmail[user.Email] = user

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID.Hex()]; !ok {
		return repository.ErrUserNotFound
	}

	r.users[user.ID.Hex()] = user
	r.byEmail[user.Email] = user

	return nil
}

// fakeOrderRepo is an in-memory OrderRepository.
type fakeOrderRepo struct {
	orders []*entity.Order

	findErr   error
	updateErr error
}

func (r *fakeOrderRepo) FindByBuyer(_ context.Context, buyerID string) ([]*entity.Order, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	var out []*entity.Order
	for _, order := range r.orders {
		if order.Buyer.Hex() == buyerID {
			out = append(out, order)
		}
	}

	return out, nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context) ([]*entity.Order, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	return r.orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}

	for _, order := range r.orders {
		if order.ID.Hex() == orderID {
			order.Status = status

			return order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// fakeHasher marks hashes with a prefix so tests can tell plaintext from hash.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenSvc issues predictable tokens of the form "token:<userID>:<role>".
type fakeTokenSvc struct {
	issueErr error
}

func (s *fakeTokenSvc) Issue(userID, role string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token:" + userID + ":" + role, nil
}

func (s *fakeTokenSvc) Verify(tokenString string) (*service.Claims, error) {
	panic("not used in these tests")
}

func (s *fakeTokenSvc) TokenTTL() time.Duration {
	return time.Hour
}
