package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemCatalog is a simple in-memory Catalog/SystemCatalog used by the
// analyzer/executor test suites, in the same spirit as the teacher's
// in-memory database used throughout sql/analyzer's *_test.go files.
// Schema reads observe a consistent snapshot because every method takes
// the same RWMutex for its whole body (spec.md §5).
type MemCatalog struct {
	mu sync.RWMutex

	dbName      string
	currentUser UserMetadata

	tables   map[string]*TableDescriptor
	columns  map[int32][]ColumnDescriptor
	nextTID  int32
	nextCID  int32

	databases map[string]DatabaseMetadata
	users     map[string]UserMetadata
	nextUID   int32
}

var _ SystemCatalog = (*MemCatalog)(nil)

func NewMemCatalog(dbName string) *MemCatalog {
	return &MemCatalog{
		dbName:      dbName,
		currentUser: UserMetadata{UserID: 1, UserName: "admin", IsSuper: true},
		tables:      make(map[string]*TableDescriptor),
		columns:     make(map[int32][]ColumnDescriptor),
		databases:   map[string]DatabaseMetadata{dbName: {DBID: 1, DBName: dbName, Owner: 1}},
		users:       map[string]UserMetadata{"admin": {UserID: 1, UserName: "admin", IsSuper: true}},
		nextTID:     1,
		nextCID:     1,
		nextUID:     2,
	}
}

func (c *MemCatalog) GetMetadataForTable(_ context.Context, name string) (*TableDescriptor, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	td, ok := c.tables[name]
	if !ok {
		return nil, false, nil
	}
	cp := *td
	return &cp, true, nil
}

func (c *MemCatalog) GetMetadataForColumnByName(_ context.Context, tableID int32, colName string) (*ColumnDescriptor, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cd := range c.columns[tableID] {
		if cd.ColumnName == colName {
			cp := cd
			return &cp, true, nil
		}
	}
	return nil, false, nil
}

func (c *MemCatalog) GetMetadataForColumnByID(_ context.Context, tableID int32, colID int32) (*ColumnDescriptor, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cd := range c.columns[tableID] {
		if cd.ColumnID == colID {
			cp := cd
			return &cp, true, nil
		}
	}
	return nil, false, nil
}

func (c *MemCatalog) GetAllColumnMetadataForTable(_ context.Context, tableID int32) ([]ColumnDescriptor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cols := append([]ColumnDescriptor(nil), c.columns[tableID]...)
	sort.Slice(cols, func(i, j int) bool { return cols[i].ColumnID < cols[j].ColumnID })
	return cols, nil
}

func (c *MemCatalog) CreateTable(_ context.Context, td TableDescriptor, columns []ColumnDescriptor) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.tables[td.TableName]; ok {
		return fmt.Errorf("table %s already registered", td.TableName)
	}
	td.TableID = c.nextTID
	c.nextTID++
	td.NColumns = len(columns)
	cols := make([]ColumnDescriptor, len(columns))
	for i, col := range columns {
		col.ColumnID = c.nextCID
		c.nextCID++
		cols[i] = col
	}
	cp := td
	c.tables[td.TableName] = &cp
	c.columns[td.TableID] = cols
	return nil
}

func (c *MemCatalog) DropTable(_ context.Context, td TableDescriptor) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tables, td.TableName)
	delete(c.columns, td.TableID)
	return nil
}

func (c *MemCatalog) CurrentDB(_ context.Context) DatabaseMetadata {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.databases[c.dbName]
}

func (c *MemCatalog) CurrentUser(_ context.Context) UserMetadata {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentUser
}

func (c *MemCatalog) CreateDatabase(_ context.Context, name string, ownerUserID int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.databases[name]; ok {
		return fmt.Errorf("database %s already exists", name)
	}
	id := int32(len(c.databases) + 1)
	c.databases[name] = DatabaseMetadata{DBID: id, DBName: name, Owner: ownerUserID}
	return nil
}

func (c *MemCatalog) DropDatabase(_ context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.databases, name)
	return nil
}

func (c *MemCatalog) CreateUser(_ context.Context, name, password string, isSuper bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.users[name]; ok {
		return fmt.Errorf("user %s already exists", name)
	}
	c.users[name] = UserMetadata{UserID: c.nextUID, UserName: name, IsSuper: isSuper}
	c.nextUID++
	return nil
}

func (c *MemCatalog) AlterUser(_ context.Context, name string, password *string, isSuper *bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	u, ok := c.users[name]
	if !ok {
		return fmt.Errorf("user %s does not exist", name)
	}
	if isSuper != nil {
		u.IsSuper = *isSuper
	}
	c.users[name] = u
	return nil
}

func (c *MemCatalog) DropUser(_ context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.users, name)
	return nil
}

func (c *MemCatalog) GetMetadataForUser(_ context.Context, name string) (*UserMetadata, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.users[name]
	if !ok {
		return nil, false, nil
	}
	return &u, true, nil
}
