package store

import (
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
)

func TestObjectStoreKeys(t *testing.T) {
	require.Equal(t, "questions/abc.json", objectKey("questions", "abc"))
	require.Equal(t, "answers/", collectionPrefix("answers"))
}

func TestObjectStoreNewIDUnique(t *testing.T) {
	s := &ObjectStore{}
	a := s.NewID("questions")
	b := s.NewID("questions")
	require.NotEqual(t, a, b)
	require.Len(t, a, 36)
}

func TestIsNoSuchKey(t *testing.T) {
	require.True(t, isNoSuchKey(minio.ErrorResponse{Code: "NoSuchKey"}))
	require.False(t, isNoSuchKey(minio.ErrorResponse{Code: "AccessDenied"}))
}

func TestNewObjectStoreRequiresConfig(t *testing.T) {
	_, err := NewObjectStore(context.Background(), ObjectStoreConfig{})
	require.Error(t, err)

	_, err = NewObjectStore(context.Background(), ObjectStoreConfig{Endpoint: "localhost:9000"})
	require.Error(t, err)
}

func newStubbedObjectStore(t *testing.T) (*ObjectStore, *s3Stub) {
	t.Helper()
	stub, endpoint := newS3Stub(t)
	s, err := NewObjectStore(context.Background(), ObjectStoreConfig{Endpoint: endpoint, Bucket: "qa"})
	require.NoError(t, err)
	require.True(t, stub.has("qa", ""))
	return s, stub
}

func TestObjectStore_SetGetAllWhere(t *testing.T) {
	s, stub := newStubbedObjectStore(t)
	ctx := context.Background()

	qid := s.NewID("questions")
	require.NoError(t, s.Set(ctx, "questions", qid, Document{"id": qid, "question": "What is 2+2?", "contents": "math"}))
	require.True(t, stub.has("qa", "questions/"+qid+".json"))

	got, err := s.Get(ctx, "questions", qid)
	require.NoError(t, err)
	require.Equal(t, Document{"id": qid, "question": "What is 2+2?", "contents": "math"}, got)

	a1, a2 := s.NewID("answers"), s.NewID("answers")
	require.NoError(t, s.Set(ctx, "answers", a1, Document{"id": a1, "questionId": qid, "contents": "4"}))
	require.NoError(t, s.Set(ctx, "answers", a2, Document{"id": a2, "questionId": "other", "contents": "5"}))

	all, err := s.All(ctx, "answers")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, a1, all[0]["id"])
	require.Equal(t, a2, all[1]["id"])

	matched, err := s.Where(ctx, "answers", "questionId", qid)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "4", matched[0]["contents"])

	questions, err := s.All(ctx, "questions")
	require.NoError(t, err)
	require.Len(t, questions, 1)

	require.NoError(t, s.Ping(ctx))
}

func TestObjectStore_GetMissing(t *testing.T) {
	s, _ := newStubbedObjectStore(t)
	_, err := s.Get(context.Background(), "questions", "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestObjectStore_AllSkipsForeignKeys(t *testing.T) {
	s, stub := newStubbedObjectStore(t)
	stub.put("qa", "questions/README.txt", []byte("not a document"))
	all, err := s.All(context.Background(), "questions")
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestObjectStore_DecodeError(t *testing.T) {
	s, stub := newStubbedObjectStore(t)
	stub.put("qa", "questions/bad.json", []byte("{not json"))

	_, err := s.Get(context.Background(), "questions", "bad")
	require.ErrorContains(t, err, "decode questions/bad.json")

	_, err = s.All(context.Background(), "questions")
	require.Error(t, err)
}
