package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/trendpulse/internal/content"
	"github.com/phrazzld/trendpulse/internal/generation"
	"github.com/phrazzld/trendpulse/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ generation.Generator       = (*mocks.MockGenerator)(nil)
	_ generation.GeneratorSource = (*mocks.MockGeneratorSource)(nil)
	_ content.Service            = (*mocks.MockContentService)(nil)
)

func TestMockGenerator(t *testing.T) {
	t.Parallel()

	t.Run("Default success case", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithText(`{"ok":true}`)
		req := &generation.Request{Capability: generation.CapabilityPlan, Prompt: "p"}

		resp, err := mockGen.Generate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, resp.Text)
		assert.Equal(t, 1, mockGen.CallCount())
		assert.Same(t, req, mockGen.LastRequest())
	})

	t.Run("Error case", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.MockGeneratorThatFails()
		_, err := mockGen.Generate(context.Background(), &generation.Request{})
		assert.ErrorIs(t, err, generation.ErrCallFailure)
	})

	t.Run("Custom function", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		mockGen := &mocks.MockGenerator{
			GenerateFn: func(context.Context, *generation.Request) (*generation.Response, error) {
				return nil, boom
			},
		}
		_, err := mockGen.Generate(context.Background(), &generation.Request{})
		assert.ErrorIs(t, err, boom)

		mockGen.Reset()
		assert.Zero(t, mockGen.CallCount())
		assert.Nil(t, mockGen.LastRequest())
	})
}

func TestMockGeneratorSource(t *testing.T) {
	t.Parallel()

	gen := mocks.NewMockGeneratorWithText("x")
	source := mocks.NewMockGeneratorSource(gen)

	got, err := source.Generator(context.Background())
	require.NoError(t, err)
	assert.Same(t, gen, got)

	source.Err = generation.ErrCredentialAbsent
	_, err = source.Generator(context.Background())
	assert.ErrorIs(t, err, generation.ErrCredentialAbsent)
	assert.Equal(t, 2, source.CallCount())
}
