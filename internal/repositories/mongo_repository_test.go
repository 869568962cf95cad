package repositories_test

import (
	"context"
	"testing"
	"time"

	"bottleshop/internal/models"
	"bottleshop/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockMongo(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func assertMillisecondStamp(t testing.TB, ts time.Time) {
	t.Helper()
	assert.False(t, ts.IsZero())
	assert.True(t, ts.Equal(ts.Truncate(time.Millisecond)), "BSON keeps milliseconds only")
}

func TestMongoProductRepository(t *testing.T) {
	mt := newMockMongo(t)
	ctx := context.Background()

	mt.Run("get all decodes the cursor", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.products", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "p2"}, {Key: "title", Value: "Glass Bottle"}, {Key: "price", Value: 19.5}},
			bson.D{{Key: "_id", Value: "p1"}, {Key: "title", Value: "Steel Bottle"}, {Key: "price", Value: 24.99}},
		))

		products, err := repo.GetAll(ctx)
		require.NoError(mt, err)
		require.Len(mt, products, 2)
		assert.Equal(mt, "p2", products[0].ID)
		assert.Equal(mt, 24.99, products[1].Price)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.products", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "p1"}, {Key: "title", Value: "Steel Bottle"}, {Key: "category", Value: "steel"}},
		))

		product, err := repo.GetByID(ctx, "p1")
		require.NoError(mt, err)
		assert.Equal(mt, "Steel Bottle", product.Title)
		assert.Equal(mt, "steel", product.Category)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.products", mtest.FirstBatch))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(mt, err, repositories.ErrNotFound)
	})

	mt.Run("create stamps ids and times", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		product := &models.Product{Title: "Bamboo Bottle", Price: 18}
		require.NoError(mt, repo.Create(ctx, product))
		assert.Len(mt, product.ID, 24)
		assertMillisecondStamp(mt, product.CreatedAt)
		assert.Equal(mt, product.CreatedAt, product.UpdatedAt)
	})

	mt.Run("update returns the stored document", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: "p1"}, {Key: "title", Value: "Steel Bottle"}, {Key: "price", Value: 21.0},
		}}))

		product, err := repo.Update(ctx, "p1", map[string]interface{}{"price": 21.0})
		require.NoError(mt, err)
		assert.Equal(mt, "p1", product.ID)
		assert.Equal(mt, 21.0, product.Price)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "findAndModify", started.CommandName)
	})

	mt.Run("update unknown id", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		_, err := repo.Update(ctx, "missing", map[string]interface{}{"price": 1.0})
		assert.ErrorIs(mt, err, repositories.ErrNotFound)
	})

	mt.Run("delete of a missing product succeeds", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.NoError(mt, repo.Delete(ctx, "missing"))
	})

	mt.Run("count", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.products", mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(3)}},
		))

		n, err := repo.Count(ctx)
		require.NoError(mt, err)
		assert.EqualValues(mt, 3, n)
	})
}

func TestMongoUserRepository(t *testing.T) {
	mt := newMockMongo(t)
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		repo := repositories.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &models.User{Name: "Ana", Email: "ana@example.com", Password: "hash"}
		require.NoError(mt, repo.Create(ctx, user))
		assert.Len(mt, user.ID, 24)
		assertMillisecondStamp(mt, user.CreatedAt)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := repositories.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: shop.users index: email_1",
		}))

		err := repo.Create(ctx, &models.User{Name: "Ana", Email: "ana@example.com", Password: "hash"})
		assert.ErrorIs(mt, err, repositories.ErrDuplicateKey)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		repo := repositories.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u1"}, {Key: "email", Value: "ana@example.com"},
			{Key: "password", Value: "hash"}, {Key: "isAdmin", Value: true},
		}))

		user, err := repo.GetByEmail(ctx, "ana@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, "u1", user.ID)
		assert.Equal(mt, "hash", user.Password)
		assert.True(mt, user.IsAdmin)
	})

	mt.Run("unknown email and id", func(mt *mtest.T) {
		repo := repositories.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "shop.users", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "shop.users", mtest.FirstBatch),
		)

		_, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(mt, err, repositories.ErrNotFound)
		_, err = repo.GetByID(ctx, "ghost")
		assert.ErrorIs(mt, err, repositories.ErrNotFound)
	})

	mt.Run("set admin", func(mt *mtest.T) {
		repo := repositories.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		assert.NoError(mt, repo.SetAdmin(ctx, "u1", true))
		assert.ErrorIs(mt, repo.SetAdmin(ctx, "ghost", true), repositories.ErrNotFound)
	})
}

func TestMongoFeedbackRepository(t *testing.T) {
	mt := newMockMongo(t)
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		repo := repositories.NewMongoFeedbackRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		feedback := &models.Feedback{Type: models.FeedbackBug, Message: "Lid leaks", Status: models.FeedbackStatusNew}
		require.NoError(mt, repo.Create(ctx, feedback))
		assert.Len(mt, feedback.ID, 24)
		assertMillisecondStamp(mt, feedback.CreatedAt)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := repositories.NewMongoFeedbackRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.feedback", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "f1"}, {Key: "type", Value: "bug"}, {Key: "rating", Value: int32(2)}, {Key: "status", Value: "new"}},
		))

		items, err := repo.List(ctx, models.FeedbackFilter{Type: "bug"}, 200)
		require.NoError(mt, err)
		require.Len(mt, items, 1)
		require.NotNil(mt, items[0].Rating)
		assert.Equal(mt, 2, *items[0].Rating)
	})

	mt.Run("update status", func(mt *mtest.T) {
		repo := repositories.NewMongoFeedbackRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: "f1"}, {Key: "type", Value: "bug"}, {Key: "status", Value: "reviewed"},
			}}),
			mtest.CreateSuccessResponse(),
		)

		feedback, err := repo.UpdateStatus(ctx, "f1", models.FeedbackStatusReviewed)
		require.NoError(mt, err)
		assert.Equal(mt, models.FeedbackStatusReviewed, feedback.Status)

		_, err = repo.UpdateStatus(ctx, "missing", models.FeedbackStatusClosed)
		assert.ErrorIs(mt, err, repositories.ErrNotFound)
	})
}

func TestMongoContactRepository(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("create", func(mt *mtest.T) {
		repo := repositories.NewMongoContactRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		contact := &models.Contact{Name: "Ana", Email: "ana@example.com", Message: "Hi"}
		require.NoError(mt, repo.Create(context.Background(), contact))
		assert.Len(mt, contact.ID, 24)
		assertMillisecondStamp(mt, contact.CreatedAt)
	})
}
