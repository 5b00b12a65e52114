package usecase

import (
	"context"
	"strings"
	"time"

	"ecommerce-backend/internal/client"
	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory fakes implementing the repository interfaces.

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := f.FindByEmail(ctx, email)
	return u != nil, nil
}

func (f *fakeUserRepo) UpdateBiometric(ctx context.Context, id uuid.UUID, biometricData string) error {
	u, _ := f.FindByID(ctx, id)
	if u != nil {
		u.BiometricData = &biometricData
	}
	return nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAllActive(_ context.Context) ([]*entity.Product, error) {
	var active []*entity.Product
	for _, p := range f.products {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

func (f *fakeProductRepo) FindByCategory(_ context.Context, category string) ([]*entity.Product, error) {
	var matched []*entity.Product
	for _, p := range f.products {
		if p.Active && p.Category != nil && *p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeProductRepo) SearchByName(_ context.Context, query string) ([]*entity.Product, error) {
	var matched []*entity.Product
	for _, p := range f.products {
		if p.Active && strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeProductRepo) FindWithDiscount(_ context.Context) ([]*entity.Product, error) {
	var matched []*entity.Product
	for _, p := range f.products {
		if p.Active && p.DiscountPrice != nil {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products[i] = product
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	p, _ := f.FindByID(ctx, id)
	if p != nil {
		p.Active = false
	}
	return nil
}

type fakeCartRepo struct {
	carts []*entity.Cart
}

func (f *fakeCartRepo) Create(_ context.Context, cart *entity.Cart) error {
	f.carts = append(f.carts, cart)
	return nil
}

func (f *fakeCartRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	for _, c := range f.carts {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) Touch(_ context.Context, cartID uuid.UUID, at time.Time) error {
	for _, c := range f.carts {
		if c.ID == cartID {
			c.UpdatedAt = at
		}
	}
	return nil
}

// fakeCartItemRepo joins against the product fake so FindDetailsByCartID
// behaves like the SQL join. Insertion order is preserved.
type fakeCartItemRepo struct {
	items    []*entity.CartItem
	products *fakeProductRepo
}

func (f *fakeCartItemRepo) Create(_ context.Context, item *entity.CartItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeCartItemRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CartItem, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeCartItemRepo) FindByCartAndProduct(_ context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error) {
	for _, it := range f.items {
		if it.CartID == cartID && it.ProductID == productID {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeCartItemRepo) FindDetailsByCartID(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItemDetail, error) {
	var details []*entity.CartItemDetail
	for _, it := range f.items {
		if it.CartID != cartID {
			continue
		}
		product, _ := f.products.FindByID(ctx, it.ProductID)
		details = append(details, &entity.CartItemDetail{
			CartItem:             *it,
			ProductName:          product.Name,
			ProductPrice:         product.Price,
			ProductDiscountPrice: product.DiscountPrice,
			ProductImageURL:      product.ImageURL,
		})
	}
	return details, nil
}

func (f *fakeCartItemRepo) UpdateQuantity(_ context.Context, id uuid.UUID, quantity int) error {
	for _, it := range f.items {
		if it.ID == id {
			it.Quantity = quantity
		}
	}
	return nil
}

func (f *fakeCartItemRepo) Delete(_ context.Context, cartID, itemID uuid.UUID) error {
	for i, it := range f.items {
		if it.ID == itemID && it.CartID == cartID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCartItemRepo) DeleteByCartID(_ context.Context, cartID uuid.UUID) error {
	var kept []*entity.CartItem
	for _, it := range f.items {
		if it.CartID != cartID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

type fakeNotifier struct {
	events []client.CartEvent
	err    error
}

func (f *fakeNotifier) ItemAdded(_ context.Context, event client.CartEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeVerifier struct {
	result *client.VerifyResult
	err    error
	calls  int
}

func (f *fakeVerifier) VerifyFace(_ context.Context, capturedImage, storedImage string) (*client.VerifyResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newFakeRepository() (*repository.Repository, *fakeUserRepo, *fakeProductRepo, *fakeCartRepo, *fakeCartItemRepo) {
	users := &fakeUserRepo{}
	products := &fakeProductRepo{}
	carts := &fakeCartRepo{}
	items := &fakeCartItemRepo{products: products}

	repo := &repository.Repository{
		User:     users,
		Product:  products,
		Cart:     carts,
		CartItem: items,
	}

	return repo, users, products, carts, items
}
