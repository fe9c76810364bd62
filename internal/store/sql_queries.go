package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	saleColumnList = `id, user_id, date, weight_kg, price_per_kg, total_price, customer_name, image_key, created_at`

	createSale = `INSERT INTO sales (user_id, date, weight_kg, price_per_kg, total_price, customer_name, image_key)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + saleColumnList + `;`

	getSale = `SELECT ` + saleColumnList + `
    FROM sales
    WHERE id = $1 AND user_id = $2;`

	listSales = `SELECT ` + saleColumnList + `
    FROM sales
    WHERE user_id = $1
    ORDER BY date DESC, created_at DESC
    LIMIT $2;`

	updateSale = `UPDATE sales
    SET date = $1, weight_kg = $2, price_per_kg = $3, total_price = $4, customer_name = $5, image_key = $6
    WHERE id = $7 AND user_id = $8
    RETURNING ` + saleColumnList + `;`

	deleteSale = `DELETE FROM sales
    WHERE id = $1 AND user_id = $2;`

	salesSummaryForDay = `SELECT COALESCE(SUM(total_price), 0), COALESCE(SUM(weight_kg), 0)
    FROM sales
    WHERE user_id = $1 AND date = $2;`

	salesSummaryForPrefix = `SELECT COALESCE(SUM(total_price), 0), COALESCE(SUM(weight_kg), 0)
    FROM sales
    WHERE user_id = $1 AND date LIKE $2;`

	salesSummaryAllTime = `SELECT COALESCE(SUM(total_price), 0), COALESCE(SUM(weight_kg), 0)
    FROM sales
    WHERE user_id = $1;`

	noteColumnList = `id, user_id, title, content, date, created_at, updated_at`

	createNote = `INSERT INTO notes (user_id, title, content, date)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + noteColumnList + `;`

	getNote = `SELECT ` + noteColumnList + `
    FROM notes
    WHERE id = $1 AND user_id = $2;`

	updateNote = `UPDATE notes
    SET title = $1, content = $2, date = $3, updated_at = NOW()
    WHERE id = $4 AND user_id = $5
    RETURNING ` + noteColumnList + `;`

	deleteNote = `DELETE FROM notes
    WHERE id = $1 AND user_id = $2;`

	expenseColumnList = `id, user_id, date, item_name, amount, category, created_at`

	createExpense = `INSERT INTO expenses (user_id, date, item_name, amount, category)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + expenseColumnList + `;`

	getExpense = `SELECT ` + expenseColumnList + `
    FROM expenses
    WHERE id = $1 AND user_id = $2;`

	listExpenses = `SELECT ` + expenseColumnList + `
    FROM expenses
    WHERE user_id = $1
    ORDER BY date DESC, created_at DESC;`

	updateExpense = `UPDATE expenses
    SET date = $1, item_name = $2, amount = $3, category = $4
    WHERE id = $5 AND user_id = $6
    RETURNING ` + expenseColumnList + `;`

	deleteExpense = `DELETE FROM expenses
    WHERE id = $1 AND user_id = $2;`

	expensesSummaryForDay = `SELECT COALESCE(SUM(amount), 0)
    FROM expenses
    WHERE user_id = $1 AND date = $2;`

	expensesSummaryForPrefix = `SELECT COALESCE(SUM(amount), 0)
    FROM expenses
    WHERE user_id = $1 AND date LIKE $2;`

	expensesSummaryAllTime = `SELECT COALESCE(SUM(amount), 0)
    FROM expenses
    WHERE user_id = $1;`
)

// noteQueryBuilder assembles the dynamic note list/search queries. Listing
// and searching share ordering (newest first); search adds a substring
// predicate over title OR content whose case sensitivity is fixed at
// construction time instead of being left to the SQL engine default.
type noteQueryBuilder struct {
	caseInsensitive bool
}

func (b noteQueryBuilder) list(userID int64) (string, []any, error) {
	return sq.Select("id", "user_id", "title", "content", "date", "created_at", "updated_at").
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func (b noteQueryBuilder) search(userID int64, query string) (string, []any, error) {
	pattern := "%" + query + "%"

	var match sq.Sqlizer
	if b.caseInsensitive {
		match = sq.Or{sq.ILike{"title": pattern}, sq.ILike{"content": pattern}}
	} else {
		match = sq.Or{sq.Like{"title": pattern}, sq.Like{"content": pattern}}
	}

	return sq.Select("id", "user_id", "title", "content", "date", "created_at", "updated_at").
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		Where(match).
		OrderBy("date DESC", "created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
