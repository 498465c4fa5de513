package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

const postsCollection = "posts"

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Content       string             `bson:"content"`
	Excerpt       string             `bson:"excerpt,omitempty"`
	CategoryID    primitive.ObjectID `bson:"category,omitempty"`
	AuthorID      primitive.ObjectID `bson:"author"`
	Tags          []string           `bson:"tags"`
	Published     bool               `bson:"published"`
	FeaturedImage string             `bson:"featured_image,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (p mongoPost) toDomain() domain.Post {
	post := domain.Post{
		ID:            p.ID.Hex(),
		Title:         p.Title,
		Content:       p.Content,
		Excerpt:       p.Excerpt,
		AuthorID:      p.AuthorID.Hex(),
		Tags:          p.Tags,
		Published:     p.Published,
		FeaturedImage: p.FeaturedImage,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if !p.CategoryID.IsZero() {
		post.CategoryID = p.CategoryID.Hex()
	}
	return post
}

func toMongoPost(post *domain.Post) (mongoPost, error) {
	author, err := primitive.ObjectIDFromHex(post.AuthorID)
	if err != nil {
		return mongoPost{}, fmt.Errorf("invalid author id %q: %w", post.AuthorID, err)
	}

	doc := mongoPost{
		Title:         post.Title,
		Content:       post.Content,
		Excerpt:       post.Excerpt,
		AuthorID:      author,
		Tags:          post.Tags,
		Published:     post.Published,
		FeaturedImage: post.FeaturedImage,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
	if post.CategoryID != "" {
		category, err := primitive.ObjectIDFromHex(post.CategoryID)
		if err != nil {
			return mongoPost{}, fmt.Errorf("invalid category id %q: %w", post.CategoryID, err)
		}
		doc.CategoryID = category
	}
	return doc, nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	doc, err := toMongoPost(post)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	post := mp.toDomain()
	return &post, nil
}

func (r *PostRepository) Find(ctx context.Context, filter ports.PostFilter) ([]domain.Post, int64, error) {
	query := bson.M{}
	if filter.PublishedOnly {
		query["published"] = true
	}
	if filter.Query != "" {
		query["$text"] = bson.M{"$search": filter.Query}
	}
	if filter.CategoryID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.CategoryID)
		if err != nil {
			return nil, 0, nil
		}
		query["category"] = oid
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	skip := int64(filter.Page-1) * int64(filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []domain.Post
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, 0, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, mp.toDomain())
	}
	return posts, total, cur.Err()
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	doc, err := toMongoPost(post)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":          doc.Title,
		"content":        doc.Content,
		"excerpt":        doc.Excerpt,
		"category":       doc.CategoryID,
		"tags":           doc.Tags,
		"published":      doc.Published,
		"featured_image": doc.FeaturedImage,
		"updated_at":     doc.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// EnsureIndexes creates the full-text index used by search plus the common
// access-path indexes.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "content", Value: "text"},
			{Key: "tags", Value: "text"},
		}},
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
