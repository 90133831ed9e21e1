package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stack4devs/stack4devs/internal/adapters/catalog"
	"github.com/stack4devs/stack4devs/internal/adapters/storage/memory"
	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/ports"
)

func testCatalog(t *testing.T) *catalog.Static {
	t.Helper()

	cat, err := catalog.New(ports.CatalogDocuments{
		Stacks: []domain.Stack{
			{ID: "blog-free", Field: "Blog", BudgetMin: 0, Tools: []domain.Tool{
				{Name: "Hashnode", Purpose: "Blog platform", Automation: domain.AutomationAI},
				{Name: "Canva", Purpose: "Design graphics", Automation: domain.AutomationManual},
			}},
			{ID: "blog-pro", Field: "Blog", BudgetMin: 50, Tools: []domain.Tool{
				{Name: "Ghost", Purpose: "Blog platform", Automation: domain.AutomationAuto},
			}},
			{ID: "saas-starter", Field: "SaaS", BudgetMin: 0, Tools: []domain.Tool{
				{Name: "Carrd", Purpose: "Landing page"},
				{Name: "Substack", Purpose: "blog platform"},
			}},
		},
		Tools: []domain.DirectoryTool{
			{ID: "hashnode", Name: "Hashnode", Category: "Blog"},
			{ID: "ghost", Name: "Ghost", Category: "Blog"},
			{ID: "carrd", Name: "Carrd"},
		},
		UseCases: []domain.UseCase{
			{ID: "start-blog", Title: "Start a blog", DefaultBudget: 50, RecommendedTools: []string{"ghost"}},
			{ID: "launch-saas", Title: "SaaS launch kit", DefaultBudget: 0, RecommendedTools: []string{"carrd"}},
		},
	})
	require.NoError(t, err)

	return cat
}

func signIn(t *testing.T, accounts *AccountService, username string) {
	t.Helper()

	_, err := accounts.Register(context.Background(), Credentials{Username: username, Password: "secret"})
	require.NoError(t, err)
}

func newMemoryAccounts() (*memory.Store, *AccountService) {
	store := memory.New()
	return store, NewAccountService(store, nil)
}
