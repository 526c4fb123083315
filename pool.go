package zhoconv

import (
	"context"
	"errors"

	pool "github.com/jolestar/go-commons-pool"
)

// One-shot callers should not pay a handle allocation per call, so we
// pool converters. Pooled handles are borrowed with the default profile
// and a clean error slot, and reset before being returned.
type converterPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalConverterPool *converterPool

func init() {
	globalConverterPool = &converterPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return New()
		})
	globalConverterPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalConverterPool.opool = pool.NewObjectPool(globalConverterPool.ctx, factory, config)
}

// borrowConverter fetches a pooled handle, falling back to a fresh one
// when the pool cannot deliver.
func borrowConverter() (*Converter, error) {
	o, err := globalConverterPool.opool.BorrowObject(globalConverterPool.ctx)
	if err != nil {
		return New()
	}
	return o.(*Converter), nil
}

// Resets the converter and puts it back into the pool.
func (c *Converter) releaseIntoPool() {
	c.config = DefaultConfig
	c.parallel = false
	c.lastErr = ""
	_ = globalConverterPool.opool.ReturnObject(globalConverterPool.ctx, c)
}

// Convert is the pooled one-shot variant of Converter.Convert. It
// borrows a handle, converts input under the named profile and returns
// the handle to the pool. An unknown profile name yields the input
// unchanged together with an error; dictionary load failure is returned
// as a hard error.
func Convert(input, config string, punctuation bool) (string, error) {
	cfg, ok := ParseConfig(config)
	if !ok {
		return input, errors.New("Invalid config: " + config)
	}
	c, err := borrowConverter()
	if err != nil {
		return input, err
	}
	defer c.releaseIntoPool()
	return c.ConvertConfig(input, cfg, punctuation), nil
}

// ZhoCheck is the pooled one-shot variant of Converter.ZhoCheck. When no
// handle can be obtained it reports 0, the neither-script answer.
func ZhoCheck(text string) int {
	c, err := borrowConverter()
	if err != nil {
		return ScriptOther
	}
	defer c.releaseIntoPool()
	return c.ZhoCheck(text)
}
