package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polkiloo/ordertrack/internal/domain/model"
	testhelpers "github.com/polkiloo/ordertrack/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func productID(id int64) *int64 { return &id }

func TestIsZipAndGo(t *testing.T) {
	require.True(t, IsZipAndGo("Zip & GO Sarees"))
	require.True(t, IsZipAndGo("zipgo"))
	require.True(t, IsZipAndGo("Ready to GO zipper saree"))
	require.False(t, IsZipAndGo("Zipper saree"))
	require.False(t, IsZipAndGo("Go green"))
	require.False(t, IsZipAndGo(""))
}

func TestClassifyByLineItemNameSkipsCatalog(t *testing.T) {
	catalog := &testhelpers.CatalogRepositoryStub{}
	classifier := NewProductClassifier(catalog, 1, discardLogger())

	items := []model.LineItem{
		{Name: "Blouse", ProductID: productID(1)},
		{Name: "Silk", Title: "Zip & Go Saree", ProductID: productID(2)},
	}
	require.True(t, classifier.Classify(context.Background(), items))

	products, collections := catalog.Calls()
	require.Empty(t, products)
	require.Empty(t, collections)
}

func TestClassifyByProductMetadata(t *testing.T) {
	catalog := &testhelpers.CatalogRepositoryStub{
		Products: map[int64]*model.Product{
			1: {ID: 1, Title: "Blouse"},
			2: {ID: 2, Title: "Silk Saree", ProductType: "Zip and Go"},
		},
	}
	classifier := NewProductClassifier(catalog, 1, discardLogger())

	items := []model.LineItem{{Name: "Blouse", ProductID: productID(1)}, {Name: "Silk Saree", ProductID: productID(2)}}
	require.True(t, classifier.Classify(context.Background(), items))

	products, collections := catalog.Calls()
	require.Equal(t, []int64{1, 2}, products)
	require.Empty(t, collections)
}

func TestClassifyMetadataPhaseCompletesBeforeCollections(t *testing.T) {
	catalog := &testhelpers.CatalogRepositoryStub{
		Products: map[int64]*model.Product{
			1: {ID: 1, Title: "Blouse"},
			2: {ID: 2, Title: "Zip Go Dupatta"},
		},
		Collections: map[int64][]model.Collection{
			1: {{Title: "Zip & GO Sarees"}},
		},
	}
	classifier := NewProductClassifier(catalog, 1, discardLogger())

	items := []model.LineItem{{Name: "Blouse", ProductID: productID(1)}, {Name: "Dupatta", ProductID: productID(2)}}
	require.True(t, classifier.Classify(context.Background(), items))

	_, collections := catalog.Calls()
	require.Empty(t, collections, "collections must not be consulted when metadata matches")
}

func TestClassifyByCollection(t *testing.T) {
	catalog := &testhelpers.CatalogRepositoryStub{
		Products: map[int64]*model.Product{
			7: {ID: 7, Title: "Kanjivaram"},
		},
		Collections: map[int64][]model.Collection{
			7: {{Title: "New In"}, {Title: "Zip & GO Sarees"}},
		},
	}
	classifier := NewProductClassifier(catalog, 4, discardLogger())

	items := []model.LineItem{
		{Name: "Kanjivaram", ProductID: productID(7)},
		{Name: "Kanjivaram again", ProductID: productID(7)},
		{Name: "Gift wrap"},
	}
	require.True(t, classifier.Classify(context.Background(), items))

	products, collections := catalog.Calls()
	require.Equal(t, []int64{7}, products, "duplicate product ids are looked up once")
	require.Equal(t, []int64{7}, collections)
}

func TestClassifyFailuresCountAsNegative(t *testing.T) {
	catalog := &testhelpers.CatalogRepositoryStub{
		ProductErr:     errors.New("boom"),
		CollectionsErr: errors.New("boom"),
	}
	classifier := NewProductClassifier(catalog, 2, discardLogger())

	items := []model.LineItem{{Name: "Saree", ProductID: productID(1)}, {Name: "Blouse", ProductID: productID(2)}}
	require.False(t, classifier.Classify(context.Background(), items))

	products, collections := catalog.Calls()
	require.ElementsMatch(t, []int64{1, 2}, products)
	require.ElementsMatch(t, []int64{1, 2}, collections)
}

func TestClassifyWithoutProductIDs(t *testing.T) {
	catalog := &testhelpers.CatalogRepositoryStub{}
	classifier := NewProductClassifier(catalog, 0, discardLogger())
	require.Equal(t, 1, classifier.concurrency)

	require.False(t, classifier.Classify(context.Background(), []model.LineItem{{Name: "Custom tailoring"}}))
	require.False(t, classifier.Classify(context.Background(), nil))
}
