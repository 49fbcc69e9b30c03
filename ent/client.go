// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/codecampus/pathway/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/codecampus/pathway/ent/assessmentrun"
	"github.com/codecampus/pathway/ent/studentprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssessmentRun is the client for interacting with the AssessmentRun builders.
	AssessmentRun *AssessmentRunClient
	// StudentProgress is the client for interacting with the StudentProgress builders.
	StudentProgress *StudentProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssessmentRun = NewAssessmentRunClient(c.config)
	c.StudentProgress = NewStudentProgressClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AssessmentRun:   NewAssessmentRunClient(cfg),
		StudentProgress: NewStudentProgressClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AssessmentRun:   NewAssessmentRunClient(cfg),
		StudentProgress: NewStudentProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssessmentRun.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AssessmentRun.Use(hooks...)
	c.StudentProgress.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AssessmentRun.Intercept(interceptors...)
	c.StudentProgress.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentRunMutation:
		return c.AssessmentRun.mutate(ctx, m)
	case *StudentProgressMutation:
		return c.StudentProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssessmentRunClient is a client for the AssessmentRun schema.
type AssessmentRunClient struct {
	config
}

// NewAssessmentRunClient returns a client for the AssessmentRun from the given config.
func NewAssessmentRunClient(c config) *AssessmentRunClient {
	return &AssessmentRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentrun.Hooks(f(g(h())))`.
func (c *AssessmentRunClient) Use(hooks ...Hook) {
	c.hooks.AssessmentRun = append(c.hooks.AssessmentRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentrun.Intercept(f(g(h())))`.
func (c *AssessmentRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentRun = append(c.inters.AssessmentRun, interceptors...)
}

// Create returns a builder for creating a AssessmentRun entity.
func (c *AssessmentRunClient) Create() *AssessmentRunCreate {
	mutation := newAssessmentRunMutation(c.config, OpCreate)
	return &AssessmentRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentRun entities.
func (c *AssessmentRunClient) CreateBulk(builders ...*AssessmentRunCreate) *AssessmentRunCreateBulk {
	return &AssessmentRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentRunClient) MapCreateBulk(slice any, setFunc func(*AssessmentRunCreate, int)) *AssessmentRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentRunCreateBulk{err: fmt.Errorf("calling to AssessmentRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentRun.
func (c *AssessmentRunClient) Update() *AssessmentRunUpdate {
	mutation := newAssessmentRunMutation(c.config, OpUpdate)
	return &AssessmentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentRunClient) UpdateOne(_m *AssessmentRun) *AssessmentRunUpdateOne {
	mutation := newAssessmentRunMutation(c.config, OpUpdateOne, withAssessmentRun(_m))
	return &AssessmentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentRunClient) UpdateOneID(id int) *AssessmentRunUpdateOne {
	mutation := newAssessmentRunMutation(c.config, OpUpdateOne, withAssessmentRunID(id))
	return &AssessmentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentRun.
func (c *AssessmentRunClient) Delete() *AssessmentRunDelete {
	mutation := newAssessmentRunMutation(c.config, OpDelete)
	return &AssessmentRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentRunClient) DeleteOne(_m *AssessmentRun) *AssessmentRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentRunClient) DeleteOneID(id int) *AssessmentRunDeleteOne {
	builder := c.Delete().Where(assessmentrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentRunDeleteOne{builder}
}

// Query returns a query builder for AssessmentRun.
func (c *AssessmentRunClient) Query() *AssessmentRunQuery {
	return &AssessmentRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentRun},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentRun entity by its id.
func (c *AssessmentRunClient) Get(ctx context.Context, id int) (*AssessmentRun, error) {
	return c.Query().Where(assessmentrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentRunClient) GetX(ctx context.Context, id int) *AssessmentRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssessmentRunClient) Hooks() []Hook {
	return c.hooks.AssessmentRun
}

// Interceptors returns the client interceptors.
func (c *AssessmentRunClient) Interceptors() []Interceptor {
	return c.inters.AssessmentRun
}

func (c *AssessmentRunClient) mutate(ctx context.Context, m *AssessmentRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentRun mutation op: %q", m.Op())
	}
}

// StudentProgressClient is a client for the StudentProgress schema.
type StudentProgressClient struct {
	config
}

// NewStudentProgressClient returns a client for the StudentProgress from the given config.
func NewStudentProgressClient(c config) *StudentProgressClient {
	return &StudentProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentprogress.Hooks(f(g(h())))`.
func (c *StudentProgressClient) Use(hooks ...Hook) {
	c.hooks.StudentProgress = append(c.hooks.StudentProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentprogress.Intercept(f(g(h())))`.
func (c *StudentProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentProgress = append(c.inters.StudentProgress, interceptors...)
}

// Create returns a builder for creating a StudentProgress entity.
func (c *StudentProgressClient) Create() *StudentProgressCreate {
	mutation := newStudentProgressMutation(c.config, OpCreate)
	return &StudentProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentProgress entities.
func (c *StudentProgressClient) CreateBulk(builders ...*StudentProgressCreate) *StudentProgressCreateBulk {
	return &StudentProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentProgressClient) MapCreateBulk(slice any, setFunc func(*StudentProgressCreate, int)) *StudentProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentProgressCreateBulk{err: fmt.Errorf("calling to StudentProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentProgress.
func (c *StudentProgressClient) Update() *StudentProgressUpdate {
	mutation := newStudentProgressMutation(c.config, OpUpdate)
	return &StudentProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentProgressClient) UpdateOne(_m *StudentProgress) *StudentProgressUpdateOne {
	mutation := newStudentProgressMutation(c.config, OpUpdateOne, withStudentProgress(_m))
	return &StudentProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentProgressClient) UpdateOneID(id int) *StudentProgressUpdateOne {
	mutation := newStudentProgressMutation(c.config, OpUpdateOne, withStudentProgressID(id))
	return &StudentProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentProgress.
func (c *StudentProgressClient) Delete() *StudentProgressDelete {
	mutation := newStudentProgressMutation(c.config, OpDelete)
	return &StudentProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentProgressClient) DeleteOne(_m *StudentProgress) *StudentProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentProgressClient) DeleteOneID(id int) *StudentProgressDeleteOne {
	builder := c.Delete().Where(studentprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentProgressDeleteOne{builder}
}

// Query returns a query builder for StudentProgress.
func (c *StudentProgressClient) Query() *StudentProgressQuery {
	return &StudentProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentProgress entity by its id.
func (c *StudentProgressClient) Get(ctx context.Context, id int) (*StudentProgress, error) {
	return c.Query().Where(studentprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentProgressClient) GetX(ctx context.Context, id int) *StudentProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentProgressClient) Hooks() []Hook {
	return c.hooks.StudentProgress
}

// Interceptors returns the client interceptors.
func (c *StudentProgressClient) Interceptors() []Interceptor {
	return c.inters.StudentProgress
}

func (c *StudentProgressClient) mutate(ctx context.Context, m *StudentProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssessmentRun, StudentProgress []ent.Hook
	}
	inters struct {
		AssessmentRun, StudentProgress []ent.Interceptor
	}
)
