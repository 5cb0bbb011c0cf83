package dal

import (
	"database/sql"
	"embed"
	"fedi_deck/shared"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks fedi_deck/dal IRepo

type IRepo interface {
	InitUpdateDb()
	AddAccountIfNotExist(account *Account) (isNew bool, err error)
	GetAccounts() ([]*Account, error)
	GetAccount(id string) (*Account, error)
	DeleteAccount(id string) error
	SavePendingAuth(pa *PendingAuth) error
	GetPendingAuth() (*PendingAuth, error)
	ClearPendingAuth() error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (repo *Repo) AddAccountIfNotExist(account *Account) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = false
	err = nil

	row := repo.db.QueryRow("SELECT id FROM accounts WHERE id=?", account.Id)
	var existingId string
	scanErr := row.Scan(&existingId)
	if scanErr == nil {
		return
	}
	if scanErr != sql.ErrNoRows {
		err = scanErr
		return
	}

	_, err = repo.db.Exec(`INSERT INTO accounts
		(id, created_at, instance, remote_id, username, display_name, avatar_url, access_token, client_id, client_secret)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		account.Id, time.Now().UTC(), account.Instance, account.RemoteId, account.Username,
		account.DisplayName, account.AvatarUrl, account.AccessToken, account.ClientId, account.ClientSecret)
	if err != nil {
		return
	}
	isNew = true
	return
}

func (repo *Repo) GetAccounts() ([]*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, created_at, instance, remote_id, username,
		display_name, avatar_url, access_token, client_id, client_secret
		FROM accounts ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Account
	for rows.Next() {
		acct := Account{}
		err = rows.Scan(&acct.Id, &acct.CreatedAt, &acct.Instance, &acct.RemoteId, &acct.Username,
			&acct.DisplayName, &acct.AvatarUrl, &acct.AccessToken, &acct.ClientId, &acct.ClientSecret)
		if err != nil {
			return nil, err
		}
		res = append(res, &acct)
	}
	return res, rows.Err()
}

func (repo *Repo) GetAccount(id string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, created_at, instance, remote_id, username,
		display_name, avatar_url, access_token, client_id, client_secret
		FROM accounts WHERE id=?`, id)
	acct := Account{}
	err := row.Scan(&acct.Id, &acct.CreatedAt, &acct.Instance, &acct.RemoteId, &acct.Username,
		&acct.DisplayName, &acct.AvatarUrl, &acct.AccessToken, &acct.ClientId, &acct.ClientSecret)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

func (repo *Repo) DeleteAccount(id string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec("DELETE FROM accounts WHERE id=?", id)
	return err
}

func (repo *Repo) SavePendingAuth(pa *PendingAuth) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	// Single-slot table: a new handshake replaces the previous one
	_, err := repo.db.Exec(`INSERT INTO pending_auth (slot, created_at, instance, client_id, client_secret)
		VALUES (0, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET created_at=excluded.created_at, instance=excluded.instance,
		client_id=excluded.client_id, client_secret=excluded.client_secret`,
		time.Now().UTC(), pa.Instance, pa.ClientId, pa.ClientSecret)
	return err
}

func (repo *Repo) GetPendingAuth() (*PendingAuth, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow("SELECT created_at, instance, client_id, client_secret FROM pending_auth WHERE slot=0")
	pa := PendingAuth{}
	err := row.Scan(&pa.CreatedAt, &pa.Instance, &pa.ClientId, &pa.ClientSecret)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pa, nil
}

func (repo *Repo) ClearPendingAuth() error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec("DELETE FROM pending_auth WHERE slot=0")
	return err
}
