// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	randommock "github.com/KirkDiggler/rpg-petgen/internal/engine/random/mock"
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
	"github.com/KirkDiggler/rpg-petgen/internal/orchestrators/generator"
	generatormock "github.com/KirkDiggler/rpg-petgen/internal/orchestrators/generator/mock"
)

// ExpectFloats queues Float64 results on the source, returned in order
func ExpectFloats(mockSource *randommock.MockSource, values ...float64) {
	var prev *gomock.Call
	for _, v := range values {
		call := mockSource.EXPECT().Float64().Return(v, nil)
		if prev != nil {
			call.After(prev)
		}
		prev = call
	}
}

// ExpectInts queues IntN(n) results on the source, returned in order
func ExpectInts(mockSource *randommock.MockSource, n int, values ...int) {
	var prev *gomock.Call
	for _, v := range values {
		call := mockSource.EXPECT().IntN(n).Return(v, nil)
		if prev != nil {
			call.After(prev)
		}
		prev = call
	}
}

// ExpectEditElement sets up an accepted element edit
func ExpectEditElement(
	ctx context.Context, mockService *generatormock.MockService,
	current pet.ElementAffinity, e pet.Element, value int, next pet.ElementAffinity,
) *gomock.Call {
	return mockService.EXPECT().
		EditElement(ctx, &generator.EditElementInput{
			Current: current,
			Element: e,
			Value:   value,
		}).
		Return(&generator.EditElementOutput{Elements: next}, nil)
}

// ExpectEditRejected sets up an element edit the picker refuses with msg
func ExpectEditRejected(ctx context.Context, mockService *generatormock.MockService, msg string) *gomock.Call {
	return mockService.EXPECT().
		EditElement(ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument(msg))
}

// ExpectGenerate sets up a successful generation for req
func ExpectGenerate(
	ctx context.Context, mockService *generatormock.MockService,
	req pet.GenerationRequest, result *pet.GenerationResult,
) *gomock.Call {
	return mockService.EXPECT().
		Generate(ctx, &generator.GenerateInput{Request: req}).
		Return(&generator.GenerateOutput{Result: result}, nil)
}

// ExpectGenerateRejected sets up a generation the validator refuses with msg
func ExpectGenerateRejected(ctx context.Context, mockService *generatormock.MockService, msg string) *gomock.Call {
	return mockService.EXPECT().
		Generate(ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument(msg))
}
