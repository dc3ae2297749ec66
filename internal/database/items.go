package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lawnchairsociety/lootscale/internal/items"
)

// ErrItemNotFound is returned when an item ID is not in the catalog table.
var ErrItemNotFound = errors.New("item not found")

const itemColumns = "id, name, description, item_type, rarity, value, max_stack, slot"

// SaveItems inserts or updates the given items in a single transaction.
func (d *Database) SaveItems(ctx context.Context, list []*items.Item) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, d.qb.Build(`
		INSERT INTO items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			item_type = excluded.item_type,
			rarity = excluded.rarity,
			value = excluded.value,
			max_stack = excluded.max_stack,
			slot = excluded.slot`))
	if err != nil {
		return fmt.Errorf("failed to prepare item upsert: %w", err)
	}
	defer stmt.Close()

	for _, item := range list {
		if item == nil {
			continue
		}
		if _, err := stmt.ExecContext(ctx,
			item.ID, item.Name, item.Description, item.Type.String(), item.Rarity.String(),
			max(item.Value, 0), max(item.MaxStack, 1), item.Slot.String(),
		); err != nil {
			return fmt.Errorf("failed to save item %s: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

// GetItem returns a single item by ID.
func (d *Database) GetItem(ctx context.Context, id string) (*items.Item, error) {
	row := d.db.QueryRowContext(ctx, d.qb.Build("SELECT "+itemColumns+" FROM items WHERE id = ?"), id)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %s: %w", id, err)
	}
	return item, nil
}

// LoadCatalog reads every stored item into an immutable catalog.
func (d *Database) LoadCatalog(ctx context.Context) (*items.Catalog, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT "+itemColumns+" FROM items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var list []*items.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	return items.NewCatalog(list...), nil
}

// CountItems returns the number of stored items.
func (d *Database) CountItems(ctx context.Context) (int, error) {
	var count int
	if err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*items.Item, error) {
	var (
		id, name, description, itemType, rarity, slot string
		value, maxStack                               int
	)
	if err := row.Scan(&id, &name, &description, &itemType, &rarity, &value, &maxStack, &slot); err != nil {
		return nil, err
	}

	item := items.NewItem(id, name, items.StringToItemType(itemType), items.StringToRarity(rarity), value)
	item.Description = description
	item.MaxStack = max(maxStack, 1)
	item.Slot = items.StringToEquipmentSlot(slot)
	return item, nil
}
