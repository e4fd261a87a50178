// Package mongo implements the student store over MongoDB, the backend
// production runs against.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bubtcse/retakewizard/internal/models"
)

const (
	courseCollection     = "CourseCode"
	submissionCollection = "RetakeSubmission"

	connectTimeout = 10 * time.Second
)

type MongoStore struct {
	client      *mongo.Client
	courses     *mongo.Collection
	submissions *mongo.Collection
}

func NewMongoStore(dsn, dbName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(dbName)
	return &MongoStore{
		client:      client,
		courses:     db.Collection(courseCollection),
		submissions: db.Collection(submissionCollection),
	}, nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	if _, err := s.courses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "code", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create course code index: %w", err)
	}
	if _, err := s.submissions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "courseCodes", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create course codes index: %w", err)
	}
	return nil
}

func (s *MongoStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	cur, err := s.courses.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

func (s *MongoStore) PutCourse(ctx context.Context, course models.Course) error {
	now := time.Now().UTC()
	_, err := s.courses.UpdateOne(ctx,
		bson.M{"code": course.Code},
		bson.M{
			"$set":         bson.M{"name": course.Name, "updatedAt": now},
			"$setOnInsert": bson.M{"code": course.Code, "createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to put course %s: %w", course.Code, err)
	}
	return nil
}

func (s *MongoStore) FindStudent(ctx context.Context, id string) (*models.StudentSubmission, error) {
	var sub models.StudentSubmission
	err := s.submissions.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find student %s: %w", id, err)
	}
	return &sub, nil
}

func (s *MongoStore) UpsertStudent(ctx context.Context, id string, update models.StudentUpdate) (*models.StudentSubmission, error) {
	now := time.Now().UTC()
	set := bson.M{"updatedAt": now}
	unset := bson.M{}

	applyField := func(name string, f models.Field) {
		switch f.Intent {
		case models.FieldSet:
			set[name] = f.Value
		case models.FieldClear:
			unset[name] = 1
		}
	}
	applyField("name", update.Name)
	applyField("section", update.Section)
	applyField("phone", update.Phone)
	applyField("email", update.Email)
	if update.Intake != nil {
		set["intake"] = *update.Intake
	}
	if update.CourseCodes != nil {
		set["courseCodes"] = update.CourseCodes
	}

	doc := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}
	if len(unset) > 0 {
		doc["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var sub models.StudentSubmission
	if err := s.submissions.FindOneAndUpdate(ctx, bson.M{"_id": id}, doc, opts).Decode(&sub); err != nil {
		return nil, fmt.Errorf("failed to upsert student %s: %w", id, err)
	}
	return &sub, nil
}

func (s *MongoStore) ListStudents(ctx context.Context) ([]models.StudentSubmission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := s.submissions.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	var subs []models.StudentSubmission
	if err := cur.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("failed to decode students: %w", err)
	}
	return subs, nil
}
