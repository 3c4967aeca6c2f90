package repositories

import (
	"context"
	"database/sql"

	"brm-service/internal/app/contracts"
	"brm-service/internal/app/models"
	"brm-service/internal/app/services/shared/flatfile"
	"brm-service/internal/app/services/shared/mongostore"
	"brm-service/internal/app/services/shared/sqlitestore"
	"brm-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/mongo"
)

var Collections = []string{
	constvars.CollectionAccounts,
	constvars.CollectionContacts,
	constvars.CollectionTemplates,
	constvars.CollectionAssessments,
	constvars.CollectionResponses,
}

// sequentialTransactor runs the steps one after the other for drivers
// without multi-document transactions.
type sequentialTransactor struct{}

func (sequentialTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func NewFileRepositories(ctx context.Context, store *flatfile.Store) (*contracts.Repositories, error) {
	if err := store.Init(ctx, Collections...); err != nil {
		return nil, err
	}
	return &contracts.Repositories{
		Accounts:    flatfile.NewRepository[models.Account](store, constvars.CollectionAccounts),
		Contacts:    flatfile.NewRepository[models.Contact](store, constvars.CollectionContacts),
		Templates:   flatfile.NewRepository[models.Template](store, constvars.CollectionTemplates),
		Assessments: flatfile.NewRepository[models.Assessment](store, constvars.CollectionAssessments),
		Responses:   flatfile.NewRepository[models.AssessmentResponse](store, constvars.CollectionResponses),
		Transactor:  sequentialTransactor{},
		Health:      store,
	}, nil
}

type sqliteHealth struct {
	db *sql.DB
}

func (h sqliteHealth) Ping(ctx context.Context) error {
	return h.db.PingContext(ctx)
}

func NewSQLiteRepositories(ctx context.Context, db *sql.DB) (*contracts.Repositories, error) {
	for _, collection := range Collections {
		unique := collection == constvars.CollectionResponses
		if err := sqlitestore.Migrate(ctx, db, collection, unique); err != nil {
			return nil, err
		}
	}
	return &contracts.Repositories{
		Accounts:    sqlitestore.NewRepository[models.Account](db, constvars.CollectionAccounts),
		Contacts:    sqlitestore.NewRepository[models.Contact](db, constvars.CollectionContacts),
		Templates:   sqlitestore.NewRepository[models.Template](db, constvars.CollectionTemplates),
		Assessments: sqlitestore.NewRepository[models.Assessment](db, constvars.CollectionAssessments),
		Responses:   sqlitestore.NewRepository[models.AssessmentResponse](db, constvars.CollectionResponses),
		Transactor:  sqlitestore.NewTransactor(db),
		Health:      sqliteHealth{db: db},
	}, nil
}

type mongoHealth struct {
	db *mongo.Database
}

func (h mongoHealth) Ping(ctx context.Context) error {
	return h.db.Client().Ping(ctx, nil)
}

func NewMongoRepositories(ctx context.Context, db *mongo.Database) (*contracts.Repositories, error) {
	indexes := []struct {
		collection     string
		referenceField string
		unique         bool
	}{
		{constvars.CollectionContacts, constvars.ReferenceFieldContactAccount, false},
		{constvars.CollectionAssessments, constvars.ReferenceFieldAssessmentAccount, false},
		{constvars.CollectionResponses, constvars.ReferenceFieldResponseAssessment, true},
	}
	for _, index := range indexes {
		if err := mongostore.EnsureIndexes(ctx, db, index.collection, index.referenceField, index.unique); err != nil {
			return nil, err
		}
	}
	return &contracts.Repositories{
		Accounts:    mongostore.NewRepository[models.Account](db, constvars.CollectionAccounts, ""),
		Contacts:    mongostore.NewRepository[models.Contact](db, constvars.CollectionContacts, constvars.ReferenceFieldContactAccount),
		Templates:   mongostore.NewRepository[models.Template](db, constvars.CollectionTemplates, ""),
		Assessments: mongostore.NewRepository[models.Assessment](db, constvars.CollectionAssessments, constvars.ReferenceFieldAssessmentAccount),
		Responses:   mongostore.NewRepository[models.AssessmentResponse](db, constvars.CollectionResponses, constvars.ReferenceFieldResponseAssessment),
		Transactor:  sequentialTransactor{},
		Health:      mongoHealth{db: db},
	}, nil
}
