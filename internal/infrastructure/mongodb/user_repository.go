package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/sales-auth-api/internal/domain"
	"github.com/tu-usuario/sales-auth-api/internal/domain/entity"
	"github.com/tu-usuario/sales-auth-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la colección users.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

// userDocument layout persistido; el hash se guarda bajo "password" para ser
// compatible con los documentos ya existentes en la colección.
type userDocument struct {
	ID           string              `bson:"_id"`
	UserName     string              `bson:"userName"`
	Email        string              `bson:"email"`
	PasswordHash string              `bson:"password"`
	Role         string              `bson:"role"`
	LastLoginAt  *time.Time          `bson:"lastLoginAt"`
	Sale         string              `bson:"sale"`
	SaleHistory  []saleEntryDocument `bson:"saleHistory"`
	CreatedAt    time.Time           `bson:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt"`
}

type saleEntryDocument struct {
	Value         float64   `bson:"value"`
	Date          time.Time `bson:"date"`
	TotalExpenses float64   `bson:"totalExpenses"`
	NetProfit     float64   `bson:"netProfit"`
	Revenue       float64   `bson:"revenue"`
}

// EnsureIndexes crea los índices únicos de identidad (email y userName).
// Idempotente; se invoca en el arranque.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userName", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("crear índices de users: %w", err)
	}
	return nil
}

// Create inserta un usuario nuevo.
func (r *UserRepo) Create(user *entity.User) error {
	ctx, cancel := opContext()
	defer cancel()
	_, err := r.col.InsertOne(ctx, toDocument(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	return r.findOne(bson.M{"_id": id}, "find user by id")
}

// FindByIdentifier busca por igualdad exacta de email O userName.
func (r *UserRepo) FindByIdentifier(identifier string) (*entity.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": identifier},
		bson.M{"userName": identifier},
	}}
	return r.findOne(filter, "find user by identifier")
}

// FindByEmailOrUserName devuelve cualquier usuario que ya tenga ese email o
// ese userName (chequeo de duplicados previo al alta).
func (r *UserRepo) FindByEmailOrUserName(email, userName string) (*entity.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"userName": userName},
	}}
	return r.findOne(filter, "find user by email or userName")
}

func (r *UserRepo) findOne(filter bson.M, op string) (*entity.User, error) {
	ctx, cancel := opContext()
	defer cancel()
	var doc userDocument
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return toEntity(&doc), nil
}

// List devuelve todos los usuarios en orden de inserción.
func (r *UserRepo) List() ([]*entity.User, error) {
	ctx, cancel := opContext()
	defer cancel()
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)
	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	list := make([]*entity.User, 0, len(docs))
	for i := range docs {
		list = append(list, toEntity(&docs[i]))
	}
	return list, nil
}

// Save reemplaza el documento completo por _id. Último write gana: dos Save
// concurrentes del mismo usuario no se mezclan, el segundo pisa al primero.
// Un append atómico ($push + $set condicional) cambiaría ese comportamiento
// observable, por eso no se usa aquí.
func (r *UserRepo) Save(user *entity.User) error {
	ctx, cancel := opContext()
	defer cancel()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, toDocument(user))
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	ctx, cancel := opContext()
	defer cancel()
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func toDocument(u *entity.User) *userDocument {
	history := make([]saleEntryDocument, 0, len(u.SaleHistory))
	for _, e := range u.SaleHistory {
		history = append(history, saleEntryDocument(e))
	}
	return &userDocument{
		ID:           u.ID,
		UserName:     u.UserName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		LastLoginAt:  u.LastLoginAt,
		Sale:         u.Sale,
		SaleHistory:  history,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toEntity(d *userDocument) *entity.User {
	history := make([]entity.SaleEntry, 0, len(d.SaleHistory))
	for _, e := range d.SaleHistory {
		history = append(history, entity.SaleEntry(e))
	}
	return &entity.User{
		ID:           d.ID,
		UserName:     d.UserName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		LastLoginAt:  d.LastLoginAt,
		Sale:         d.Sale,
		SaleHistory:  history,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
