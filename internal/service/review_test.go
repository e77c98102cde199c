package service_test

import (
	"context"
	"errors"
	"testing"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/mocks"
	"yelpcamp/internal/service"
	"yelpcamp/internal/validation"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockStore       *mocks.MockStore
	mockCampgrounds *mocks.MockCampgroundRepositoryInterface
	mockReviews     *mocks.MockReviewRepositoryInterface
	service         *service.ReviewService
	ctx             context.Context
}

func (suite *ReviewServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStore(suite.ctrl)
	suite.mockCampgrounds = mocks.NewMockCampgroundRepositoryInterface(suite.ctrl)
	suite.mockReviews = mocks.NewMockReviewRepositoryInterface(suite.ctrl)
	expectStore(suite.mockStore, suite.mockCampgrounds, suite.mockReviews)

	suite.service = service.NewReviewService(service.NewRelationshipManager(suite.mockStore), validation.New())
	suite.ctx = context.Background()
}

func (suite *ReviewServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReviewServiceTestSuite) TestCreateReview_AttachesToCampground() {
	gomock.InOrder(
		suite.mockCampgrounds.EXPECT().GetByID(gomock.Any(), "a").Return(&models.Campground{BaseModel: models.BaseModel{ID: "a"}}, nil),
		suite.mockReviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *models.Review) error {
				suite.Equal("Nice", r.Body)
				suite.Equal(5, r.Rating)
				r.ID = "r1"
				return nil
			}),
		suite.mockCampgrounds.EXPECT().AppendReview(gomock.Any(), "a", "r1").Return(nil),
	)

	resp, err := suite.service.CreateReview(suite.ctx, "a", &validation.ReviewInput{Body: "Nice", Rating: rating(5)})

	suite.Require().NoError(err)
	suite.Equal("r1", resp.ID)
	suite.Equal(5, resp.Rating)
}

func (suite *ReviewServiceTestSuite) TestCreateReview_MissingCampgroundCreatesNothing() {
	suite.mockCampgrounds.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, apperrors.ErrCampgroundNotFound)

	resp, err := suite.service.CreateReview(suite.ctx, "missing", &validation.ReviewInput{Body: "Nice", Rating: rating(5)})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrCampgroundNotFound)
}

func (suite *ReviewServiceTestSuite) TestCreateReview_InvalidRating() {
	resp, err := suite.service.CreateReview(suite.ctx, "a", &validation.ReviewInput{Body: "Wow", Rating: rating(6)})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
	suite.Equal(`"rating" must be less than or equal to 5`, err.Error())
}

func (suite *ReviewServiceTestSuite) TestCreateReview_AppendFailure() {
	suite.mockCampgrounds.EXPECT().GetByID(gomock.Any(), "a").Return(&models.Campground{BaseModel: models.BaseModel{ID: "a"}}, nil)
	suite.mockReviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *models.Review) error {
			r.ID = "r1"
			return nil
		})
	suite.mockCampgrounds.EXPECT().AppendReview(gomock.Any(), "a", "r1").Return(errors.New("deadlock detected"))

	resp, err := suite.service.CreateReview(suite.ctx, "a", &validation.ReviewInput{Body: "Nice", Rating: rating(4)})

	suite.Nil(resp)
	suite.True(apperrors.IsStore(err))
	suite.Equal("failed to create review", apperrors.PublicMessage(err))
}

func TestReviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}
