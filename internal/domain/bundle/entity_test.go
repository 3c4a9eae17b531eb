//go:build unit

package bundle_test

import (
	"testing"
	"time"

	"trainhub/internal/domain/bundle"
	"trainhub/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, draft)

		assert.NotEqual(t, uuid.Nil, draft.ID())
		assert.Equal(t, bundle.StatusDraft, draft.Status())
		assert.Nil(t, draft.PublishedSnapshot())
		assert.False(t, draft.EverPublished())
		assert.Equal(t, draft.CreatedAt(), draft.UpdatedAt())
	})

	t.Run("content validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.BundleBuilder)
			errIs  error
		}{
			{
				name:   "empty title",
				mutate: func(b *builder.BundleBuilder) { b.Title = "   " },
				errIs:  bundle.ErrEmptyTitle,
			},
			{
				name:   "title too long",
				mutate: func(b *builder.BundleBuilder) { b.Title = string(make([]byte, 121)) },
				errIs:  bundle.ErrEmptyTitle,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.BundleBuilder) { b.Price = decimal.NewFromInt(-1) },
				errIs:  bundle.ErrNegativePrice,
			},
			{
				name:   "zero price is valid",
				mutate: func(b *builder.BundleBuilder) { b.Price = decimal.Zero },
			},
			{
				name:   "invalid cadence",
				mutate: func(b *builder.BundleBuilder) { b.Cadence = "yearly" },
				errIs:  bundle.ErrInvalidCadence,
			},
			{
				name: "duplicate remote refs",
				mutate: func(b *builder.BundleBuilder) {
					b.Products = bundle.ProductList{
						{RemoteRef: 101, Name: "A", Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
						{RemoteRef: 101, Name: "B", Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
					}
				},
				errIs: bundle.ErrDuplicateRemoteRef,
			},
			{
				name: "zero quantity product",
				mutate: func(b *builder.BundleBuilder) {
					b.Products = bundle.ProductList{
						{RemoteRef: 101, Name: "A", Quantity: 0, UnitPrice: decimal.NewFromInt(1)},
					}
				},
				errIs: bundle.ErrInvalidQuantity,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewBundleBuilder().With(tc.mutate)
				_, err := b.BuildDomain()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestDraftLifecycle(t *testing.T) {
	now := time.Now()
	reviewer := uuid.New()

	t.Run("first publish happy path", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, draft.Submit(now))
		assert.Equal(t, bundle.StatusPendingReview, draft.Status())
		require.NotNil(t, draft.SubmittedAt())

		require.NoError(t, draft.Approve(reviewer, now))
		assert.Equal(t, bundle.StatusPublishing, draft.Status())
		assert.Equal(t, reviewer, *draft.ReviewedBy())

		require.NoError(t, draft.MarkPublished(9001, 9002, now))
		assert.Equal(t, bundle.StatusPublished, draft.Status())
		assert.Equal(t, int64(9001), *draft.RemoteProductRef())
		assert.Equal(t, int64(9002), *draft.RemoteVariantRef())
		assert.True(t, draft.EverPublished())
		assert.Nil(t, draft.PublishedSnapshot())
	})

	t.Run("double submit is rejected", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, draft.Submit(now))
		assert.ErrorIs(t, draft.Submit(now), bundle.ErrReviewAlreadyOpen)
	})

	t.Run("approve requires an open round", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, draft.Approve(reviewer, now), bundle.ErrInvalidTransition)
	})

	t.Run("reject keeps the reason on the draft", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, draft.Submit(now))

		require.NoError(t, draft.Reject(reviewer, "price looks wrong", now))
		assert.Equal(t, bundle.StatusRejected, draft.Status())
		assert.Equal(t, "price looks wrong", *draft.ReviewNotes())

		// A rejected draft can be resubmitted.
		require.NoError(t, draft.Submit(now))
		assert.Equal(t, bundle.StatusPendingReview, draft.Status())
	})

	t.Run("request changes returns the draft to the trainer", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, draft.Submit(now))

		require.NoError(t, draft.RequestChanges(reviewer, "add a description", now))
		assert.Equal(t, bundle.StatusDraft, draft.Status())
		assert.Equal(t, "add a description", *draft.ReviewNotes())
	})

	t.Run("failed publish can be resubmitted", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, draft.Submit(now))
		require.NoError(t, draft.Approve(reviewer, now))

		require.NoError(t, draft.MarkPublishFailed(now))
		assert.Equal(t, bundle.StatusFailed, draft.Status())
		assert.False(t, draft.EverPublished())

		require.NoError(t, draft.Submit(now))
		assert.Equal(t, bundle.StatusPendingReview, draft.Status())
	})

	t.Run("published bundle re-enters review as pending_update", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildPublished(9001, 9002)
		require.NoError(t, err)

		require.NoError(t, draft.ApplyEdit(draft.Content(), now))
		assert.Equal(t, bundle.StatusPendingUpdate, draft.Status())

		require.NoError(t, draft.Approve(reviewer, now))
		require.NoError(t, draft.MarkPublished(9001, 9002, now))
		assert.Equal(t, bundle.StatusPublished, draft.Status())
	})

	t.Run("remote refs are immutable after first publish", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildPublished(9001, 9002)
		require.NoError(t, err)

		require.NoError(t, draft.ApplyEdit(draft.Content(), now))
		require.NoError(t, draft.Approve(reviewer, now))
		assert.ErrorIs(t, draft.MarkPublished(7777, 9002, now), bundle.ErrRemoteRefImmutable)
	})
}

func TestDraftEdit(t *testing.T) {
	now := time.Now()

	t.Run("editing while publishing is blocked", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, draft.Submit(now))
		require.NoError(t, draft.Approve(uuid.New(), now))

		assert.ErrorIs(t, draft.ApplyEdit(draft.Content(), now), bundle.ErrEditWhilePublishing)
	})

	t.Run("editing a published bundle freezes the snapshot", func(t *testing.T) {
		b := builder.NewBundleBuilder()
		draft, err := b.BuildPublished(9001, 9002)
		require.NoError(t, err)

		before := draft.Content()

		updated := before
		updated.Title = "Strength Starter Pack v2"
		updated.Price = decimal.NewFromInt(179)
		require.NoError(t, draft.ApplyEdit(updated, now))

		snap := draft.PublishedSnapshot()
		require.NotNil(t, snap)
		assert.Equal(t, before.Title, snap.Title)
		assert.True(t, before.Price.Equal(snap.Price))
		if diff := cmp.Diff(before.Products, snap.Products); diff != "" {
			t.Errorf("snapshot products mismatch (-want +got):\n%s", diff)
		}

		// The snapshot is captured once per update round, not per edit.
		second := updated
		second.Title = "Strength Starter Pack v3"
		require.NoError(t, draft.ApplyEdit(second, now))
		snap2 := draft.PublishedSnapshot()
		require.NotNil(t, snap2)
		assert.Equal(t, before.Title, snap2.Title)
	})

	t.Run("successful sync clears the snapshot", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildPublished(9001, 9002)
		require.NoError(t, err)

		require.NoError(t, draft.ApplyEdit(draft.Content(), now))
		require.NotNil(t, draft.PublishedSnapshot())

		require.NoError(t, draft.Approve(uuid.New(), now))
		require.NoError(t, draft.MarkPublished(9001, 9002, now))
		assert.Nil(t, draft.PublishedSnapshot())
	})

	t.Run("failed sync keeps the snapshot", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildPublished(9001, 9002)
		require.NoError(t, err)

		require.NoError(t, draft.ApplyEdit(draft.Content(), now))
		require.NoError(t, draft.Approve(uuid.New(), now))
		require.NoError(t, draft.MarkPublishFailed(now))

		assert.Equal(t, bundle.StatusFailed, draft.Status())
		assert.NotNil(t, draft.PublishedSnapshot())
	})

	t.Run("invalid content leaves the draft untouched", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildPublished(9001, 9002)
		require.NoError(t, err)

		bad := draft.Content()
		bad.Title = ""
		assert.ErrorIs(t, draft.ApplyEdit(bad, now), bundle.ErrEmptyTitle)
		assert.Equal(t, bundle.StatusPublished, draft.Status())
		assert.Nil(t, draft.PublishedSnapshot())
	})
}

func TestComponentEdits(t *testing.T) {
	now := time.Now()

	t.Run("set quantity on published bundle moves it to pending_update", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildPublished(9001, 9002)
		require.NoError(t, err)

		require.NoError(t, draft.SetQuantity(101, 5, now))
		assert.Equal(t, bundle.StatusPendingUpdate, draft.Status())
		assert.Equal(t, int32(5), draft.Content().Products[0].Quantity)

		snap := draft.PublishedSnapshot()
		require.NotNil(t, snap)
		assert.Equal(t, int32(2), snap.Products[0].Quantity)
	})

	t.Run("component edits require a live bundle", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, draft.SetQuantity(101, 5, now), bundle.ErrNotPublished)
		assert.ErrorIs(t, draft.RemoveComponent(101, now), bundle.ErrNotPublished)
	})

	t.Run("add merges duplicate remote refs by summing quantities", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildPublished(9001, 9002)
		require.NoError(t, err)

		item := bundle.ProductItem{RemoteRef: 101, Name: "Whey Protein 1kg", Quantity: 3, UnitPrice: decimal.NewFromInt(35)}
		require.NoError(t, draft.AddComponent(item, now))
		assert.Equal(t, int32(5), draft.Content().Products[0].Quantity)
		assert.Len(t, draft.Content().Products, 2)
	})

	t.Run("failed component edit leaves status untouched", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildPublished(9001, 9002)
		require.NoError(t, err)

		assert.ErrorIs(t, draft.SetQuantity(999, 5, now), bundle.ErrComponentNotFound)
		assert.Equal(t, bundle.StatusPublished, draft.Status())
		assert.Nil(t, draft.PublishedSnapshot())

		assert.ErrorIs(t, draft.SetQuantity(101, 0, now), bundle.ErrInvalidQuantity)
		assert.Equal(t, bundle.StatusPublished, draft.Status())
	})

	t.Run("remove keeps order of remaining items", func(t *testing.T) {
		draft, err := builder.NewBundleBuilder().BuildPublished(9001, 9002)
		require.NoError(t, err)

		require.NoError(t, draft.RemoveComponent(101, now))
		products := draft.Content().Products
		require.Len(t, products, 1)
		assert.Equal(t, int64(102), products[0].RemoteRef)
	})
}
