package handlers_fiber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Koushal55/GitReceipt/internal/api"
	"github.com/Koushal55/GitReceipt/internal/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type usecaseMock struct{ mock.Mock }

func (m *usecaseMock) BuildReceipt(ctx context.Context, login string) (entities.ReceiptDocument, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(entities.ReceiptDocument), args.Error(1)
}

func testApp(uc *usecaseMock) *fiber.App {
	app := fiber.New()
	h := NewHandler(zap.NewNop().Sugar(), uc)
	api.RegisterHandlers(app, h)
	return app
}

func TestGetReceiptLogin(t *testing.T) {
	doc := entities.ReceiptDocument{
		User:  entities.Identity{Login: "octocat", DisplayName: "The Octocat"},
		Stats: entities.StatsSummary{Commits: 42, TopLanguage: "Go"},
		Items: []entities.LineItem{
			{Quantity: 42, Description: "Commits Pushed", UnitPrice: 1.37},
		},
		Surcharge:   entities.Surcharge{Label: "Gopher Fee", Amount: 5.00},
		CodingStyle: entities.StyleGopher,
		EffortScore: 50,
		ReceiptID:   "#GH-00007",
		TerminalID:  "TERM-0007",
	}

	uc := &usecaseMock{}
	uc.On("BuildReceipt", mock.Anything, "octocat").Return(doc, nil)

	app := testApp(uc)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/receipt/octocat", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.Receipt
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "octocat", body.User.Login)
	require.Equal(t, 42, body.Stats.Commits)
	require.Equal(t, "GOPHER", body.CodingStyle)
	require.Equal(t, "#GH-00007", body.ReceiptId)
	require.Len(t, body.Items, 1)
	uc.AssertExpectations(t)
}

func TestGetReceiptLoginNotFound(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("BuildReceipt", mock.Anything, "ghost").
		Return(entities.ReceiptDocument{}, entities.ErrIdentityNotFound)

	app := testApp(uc)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/receipt/ghost", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
