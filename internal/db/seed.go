package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Seed inserts demo data: an owner with a workspace, a handful of offers and
// campaign tests with auto-posted transactions, and a reconciled ledger.
// Intended for local development only.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	// The no-op upsert keeps the RETURNING id working when the demo user
	// already exists from an earlier seed run.
	var ownerID uuid.UUID
	err = db.QueryRow(ctx, `INSERT INTO users (id, email, password_hash, created_at)
VALUES ($1,$2,$3,now()) ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id`,
		uuid.New(), "demo@tracklab.local", string(hash)).Scan(&ownerID)
	if err != nil {
		return err
	}

	// An existing workspace means the demo data is already in place.
	var seeded bool
	err = db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM workspaces WHERE owner_id = $1)`,
		ownerID).Scan(&seeded)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	workspaceID := uuid.New()
	_, err = db.Exec(ctx, `INSERT INTO workspaces (id, owner_id, name, created_at, updated_at)
VALUES ($1,$2,$3,now(),now())`,
		workspaceID, ownerID, "Demo Workspace")
	if err != nil {
		return err
	}

	niches := []string{"fitness", "finance", "beauty"}
	sources := []string{"facebook", "google", "tiktok"}
	statuses := []string{"Scale", "Pause", "Stop"}

	offerIDs := make([]uuid.UUID, 0, 3)
	for i := 1; i <= 3; i++ {
		offerID := uuid.New()
		offerIDs = append(offerIDs, offerID)
		_, err = db.Exec(ctx, `INSERT INTO offers
(id, workspace_id, name, niche, library_link, landing_page_link, checkout_link, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now()) ON CONFLICT DO NOTHING`,
			offerID, workspaceID, fmt.Sprintf("Offer %d", i), niches[r.Intn(len(niches))],
			fmt.Sprintf("https://example.com/library/%d", i),
			fmt.Sprintf("https://example.com/landing/%d", i),
			fmt.Sprintf("https://example.com/checkout/%d", i))
		if err != nil {
			return err
		}
	}

	totalInvested := 0
	totalReturned := 0
	for i := 1; i <= 10; i++ {
		testID := uuid.New()
		offerID := offerIDs[r.Intn(len(offerIDs))]
		invested := 100 + r.Intn(900)
		returned := r.Intn(2 * invested)
		impressions := 10000 + r.Intn(90000)
		clicks := impressions / (10 + r.Intn(40))
		conversions := clicks / (5 + r.Intn(20))
		totalInvested += invested
		totalReturned += returned
		_, err = db.Exec(ctx, `INSERT INTO tests
(id, workspace_id, offer_id, start_date, product_name, niche, traffic_source,
 landing_page_url, invested_amount, return_value, impressions, clicks, conversions,
 status, observations, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,now()) ON CONFLICT DO NOTHING`,
			testID, workspaceID, offerID, time.Now().AddDate(0, 0, -r.Intn(30)),
			fmt.Sprintf("Product %d", i), niches[r.Intn(len(niches))], sources[r.Intn(len(sources))],
			fmt.Sprintf("https://example.com/lp/%d", i), invested, returned,
			impressions, clicks, conversions, statuses[r.Intn(len(statuses))], "")
		if err != nil {
			return err
		}

		_, err = db.Exec(ctx, `INSERT INTO transactions
(id, workspace_id, test_id, type, amount, description, date)
VALUES ($1,$2,$3,'investment',$4,$5,now()) ON CONFLICT DO NOTHING`,
			uuid.New(), workspaceID, testID, invested, fmt.Sprintf("Investment - Product %d", i))
		if err != nil {
			return err
		}
		if returned > 0 {
			_, err = db.Exec(ctx, `INSERT INTO transactions
(id, workspace_id, test_id, type, amount, description, date)
VALUES ($1,$2,$3,'revenue',$4,$5,now()) ON CONFLICT DO NOTHING`,
				uuid.New(), workspaceID, testID, returned, fmt.Sprintf("Revenue - Product %d", i))
			if err != nil {
				return err
			}
		}
	}

	capital := 10000
	netProfit := totalReturned - totalInvested
	_, err = db.Exec(ctx, `INSERT INTO financial_data
(workspace_id, initial_capital, current_balance, total_investment, total_revenue, net_profit, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now())
ON CONFLICT (workspace_id) DO UPDATE SET
	initial_capital = EXCLUDED.initial_capital,
	current_balance = EXCLUDED.current_balance,
	total_investment = EXCLUDED.total_investment,
	total_revenue = EXCLUDED.total_revenue,
	net_profit = EXCLUDED.net_profit,
	updated_at = now()`,
		workspaceID, capital, capital+netProfit, totalInvested, totalReturned, netProfit)
	if err != nil {
		return err
	}

	// Demo member permissions kept here so the jsonb shape has one
	// non-trivial example in dev data.
	perms, _ := json.Marshal(map[string]bool{"edit_tests": true, "view_only": false})
	memberID := uuid.New()
	memberHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	var memberUser uuid.UUID
	err = db.QueryRow(ctx, `INSERT INTO users (id, email, password_hash, created_at)
VALUES ($1,$2,$3,now()) ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id`,
		uuid.New(), "member@tracklab.local", string(memberHash)).Scan(&memberUser)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `INSERT INTO workspace_members
(id, workspace_id, user_id, email, role, permissions, invited_by, joined_at, created_at)
VALUES ($1,$2,$3,$4,'member',$5,$6,now(),now()) ON CONFLICT DO NOTHING`,
		memberID, workspaceID, memberUser, "member@tracklab.local", perms, ownerID)
	return err
}
