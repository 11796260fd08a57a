package services_test

import (
	"context"
	"testing"

	"github.com/crossborder/landed_cost_app/internal/core/services"
	"github.com/crossborder/landed_cost_app/internal/repositories/static"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DutyClassifierTestSuite struct {
	suite.Suite
	classifier *services.DutyClassifier
}

func (suite *DutyClassifierTestSuite) SetupTest() {
	store, err := static.NewDefaultReferenceStore()
	suite.Require().NoError(err)
	suite.classifier = services.NewDutyClassifier(store, services.DefaultFallbackDutyRate)
}

func (suite *DutyClassifierTestSuite) TestClassify_MatchedUsesRangeLowBound() {
	c := suite.classifier.Classify(context.Background(), "6109.10")

	suite.True(c.Matched)
	suite.True(c.Rate.Equal(decimal.RequireFromString("0.165")),
		"expected low bound 0.165, got %s", c.Rate)
}

func (suite *DutyClassifierTestSuite) TestClassify_MissingCodeFallsBack() {
	for _, hsCode := range []string{"", "   "} {
		c := suite.classifier.Classify(context.Background(), hsCode)
		suite.False(c.Matched)
		suite.True(c.Rate.Equal(services.DefaultFallbackDutyRate))
	}
}

func (suite *DutyClassifierTestSuite) TestClassify_UnknownCodeFallsBack() {
	c := suite.classifier.Classify(context.Background(), "999999")

	suite.False(c.Matched)
	suite.True(c.Rate.Equal(services.DefaultFallbackDutyRate))
}

func (suite *DutyClassifierTestSuite) TestClassify_CaseInsensitiveLookup() {
	// HS codes are numeric in practice, but lookups normalize case anyway.
	c := suite.classifier.Classify(context.Background(), " 6109.10 ")

	suite.True(c.Matched)
}

func TestDutyClassifier(t *testing.T) {
	suite.Run(t, new(DutyClassifierTestSuite))
}

func TestNewDutyClassifier_FallbackRateDefaults(t *testing.T) {
	store, err := static.NewDefaultReferenceStore()
	require.NoError(t, err)

	custom := services.NewDutyClassifier(store, decimal.RequireFromString("0.2"))
	require.True(t, custom.FallbackRate().Equal(decimal.RequireFromString("0.2")))

	zero := services.NewDutyClassifier(store, decimal.Zero)
	require.True(t, zero.FallbackRate().Equal(services.DefaultFallbackDutyRate))

	negative := services.NewDutyClassifier(store, decimal.RequireFromString("-0.1"))
	require.True(t, negative.FallbackRate().Equal(services.DefaultFallbackDutyRate))
}
