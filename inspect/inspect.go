// Package inspect 读取已有 sqlite 库的表结构，与代码中声明的表描述对账。
// 只做读取和比对，不会从库里反推声明，也不生成任何 DDL。
package inspect

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/hatlonely/sorm/schema"
)

var ErrTableNotFound = errors.New("table not found")

type Options struct {
	Driver   string `cfg:"driver" def:"sqlite3"`
	Database string `cfg:"database"`
	MaxConns int    `cfg:"maxConns" def:"10"`
	MaxIdle  int    `cfg:"maxIdle" def:"5"`
}

type Inspector struct {
	db    *sql.DB
	owned bool
}

func NewInspectorWithOptions(options *Options) (*Inspector, error) {
	driver := options.Driver
	if driver == "" {
		driver = "sqlite3"
	}

	db, err := sql.Open(driver, options.Database)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s failed", options.Database)
	}

	if options.MaxConns > 0 {
		db.SetMaxOpenConns(options.MaxConns)
	}
	if options.MaxIdle > 0 {
		db.SetMaxIdleConns(options.MaxIdle)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "ping %s failed", options.Database)
	}

	return &Inspector{db: db, owned: true}, nil
}

// NewInspectorWithDB 复用已有连接，Close 时不关闭该连接
func NewInspectorWithDB(db *sql.DB) *Inspector {
	return &Inspector{db: db}
}

func (i *Inspector) Close() error {
	if !i.owned {
		return nil
	}
	return i.db.Close()
}

// TableExists 判断表是否存在
func (i *Inspector) TableExists(ctx context.Context, table string) (bool, error) {
	var count int
	err := i.db.QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table,
	).Scan(&count)
	if err != nil {
		return false, errors.Wrapf(err, "query sqlite_master for %s failed", table)
	}
	return count > 0, nil
}

// TableInfo 读取表的列信息，Cid 为列在存储中的实际位置。表不存在时返回
// ErrTableNotFound
func (i *Inspector) TableInfo(ctx context.Context, table string) ([]schema.TableInfo, error) {
	rows, err := i.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, errors.Wrapf(err, "table_info %s failed", table)
	}
	defer rows.Close()

	var res []schema.TableInfo
	for rows.Next() {
		var info schema.TableInfo
		var notNull int
		var dflt sql.NullString
		if err := rows.Scan(&info.Cid, &info.Name, &info.Type, &notNull, &dflt, &info.Pk); err != nil {
			return nil, errors.Wrapf(err, "scan table_info %s failed", table)
		}
		info.NotNull = notNull != 0
		if dflt.Valid {
			info.DfltValue = dflt.String
		}
		res = append(res, info)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "table_info %s failed", table)
	}
	if len(res) == 0 {
		return nil, errors.Wrapf(ErrTableNotFound, "table %s", table)
	}
	return res, nil
}
