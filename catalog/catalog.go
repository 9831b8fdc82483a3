// Package catalog defines the external collaborator spec.md §6 names: the
// schema metadata store the analyzer and executor read and mutate. The
// on-disk persistence behind it is out of scope (an external concern of
// its own); this package only fixes the interface shape, split into a
// universally-required read/write interface and a system-administration
// interface required only for DDL/DCL on users and databases (spec.md §9
// "Global catalog types").
package catalog

import (
	"context"

	"github.com/mapd-project/queryfront/types"
)

// MAPDSystemDB is the distinguished database in which user/database
// administration is legal (spec.md §6).
const MAPDSystemDB = "mapd"

// DefaultFragmentSize and DefaultPageSize are the distinguished storage
// constants a CREATE TABLE adopts when no FRAGMENT_SIZE/PAGE_SIZE option
// is given (spec.md §4.6). config.Default carries the same values;
// CREATE TABLE reads these constants, not a loaded config.Config.
const (
	DefaultFragmentSize = 32000000
	DefaultPageSize     = 1048576
)

type CompressionKind int

const (
	CompressionNone CompressionKind = iota
	CompressionFixed
	CompressionRL
	CompressionDiff
	CompressionDict
	CompressionSparse
)

type FragmentType int

const (
	FragmentInsertOrder FragmentType = iota
)

type StorageOption int

const (
	StorageDisk StorageOption = iota
	StorageGPU
	StorageMIC
	StorageCPU
)

func (s StorageOption) String() string {
	switch s {
	case StorageGPU:
		return "GPU"
	case StorageMIC:
		return "MIC"
	case StorageCPU:
		return "CPU"
	default:
		return "DISK"
	}
}

type RefreshOption int

const (
	RefreshManual RefreshOption = iota
	RefreshAuto
	RefreshImmediate
)

func (r RefreshOption) String() string {
	switch r {
	case RefreshAuto:
		return "AUTO"
	case RefreshImmediate:
		return "IMMEDIATE"
	default:
		return "MANUAL"
	}
}

// ColumnDescriptor mirrors spec.md §6's ColumnDescriptor exactly, with the
// compression metadata the expression analyzer copies onto every
// ColumnVar it produces (SPEC_FULL.md "Compression metadata on
// ColumnVar").
type ColumnDescriptor struct {
	ColumnID    int32
	ColumnName  string
	ColumnType  types.SQLType
	Compression CompressionKind
	CompParam   int
}

// TableDescriptor mirrors spec.md §6's TableDescriptor exactly.
type TableDescriptor struct {
	TableID       int32
	TableName     string
	NColumns      int
	IsView        bool
	IsMaterialized bool
	ViewSQL       string
	StorageOption StorageOption
	RefreshOption RefreshOption
	CheckOption   string
	IsReady       bool
	Partitioner   string
	FragType      FragmentType
	MaxFragRows   int
	FragPageSize  int
}

type DatabaseMetadata struct {
	DBID  int32
	DBName string
	Owner int32
}

type UserMetadata struct {
	UserID   int32
	UserName string
	IsSuper  bool
}

// Catalog is the read/write interface every analyzer and DDL executor
// call needs regardless of which database it is connected to.
type Catalog interface {
	GetMetadataForTable(ctx context.Context, name string) (*TableDescriptor, bool, error)
	GetMetadataForColumnByName(ctx context.Context, tableID int32, colName string) (*ColumnDescriptor, bool, error)
	GetMetadataForColumnByID(ctx context.Context, tableID int32, colID int32) (*ColumnDescriptor, bool, error)
	GetAllColumnMetadataForTable(ctx context.Context, tableID int32) ([]ColumnDescriptor, error)

	CreateTable(ctx context.Context, td TableDescriptor, columns []ColumnDescriptor) error
	DropTable(ctx context.Context, td TableDescriptor) error

	CurrentDB(ctx context.Context) DatabaseMetadata
	CurrentUser(ctx context.Context) UserMetadata
}

// SystemCatalog is required only when executing CREATE/ALTER/DROP
// DATABASE or CREATE/ALTER/DROP USER, and only while connected to
// MAPDSystemDB (spec.md §4.6).
type SystemCatalog interface {
	Catalog

	CreateDatabase(ctx context.Context, name string, ownerUserID int32) error
	DropDatabase(ctx context.Context, name string) error

	CreateUser(ctx context.Context, name, password string, isSuper bool) error
	AlterUser(ctx context.Context, name string, password *string, isSuper *bool) error
	DropUser(ctx context.Context, name string) error
	GetMetadataForUser(ctx context.Context, name string) (*UserMetadata, bool, error)
}
