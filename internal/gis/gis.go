// Package gis 按县查询公共宗地要素服务，把县差异化的属性字段
// 映射为统一的物业记录。查询是尽力而为的地址补全，失败不会
// 阻塞提案生成。
package gis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"k8s.io/klog/v2"

	"github.com/proposalforge/backend/config"
)

var (
	ErrCountyUnsupported = errors.New("该县的宗地查询尚未接入")
	ErrParcelNotFound    = errors.New("未找到对应宗地")
	ErrBadResponse       = errors.New("宗地服务响应格式异常")
)

// PropertyRecord 归一化后的物业记录
type PropertyRecord struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Owner   string `json:"owner"`
	LandUse string `json:"land_use"`
	Zoning  string `json:"zoning"`
}

// featureResponse ArcGIS 要素服务的查询响应
type featureResponse struct {
	Features []struct {
		Attributes map[string]any `json:"attributes"`
	} `json:"features"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type cacheEntry struct {
	record    *PropertyRecord
	expiresAt time.Time
}

// Client 县宗地查询客户端。结果按 县+宗地号 做短时记忆，
// 失败不缓存、不重试。
type Client struct {
	rest     *resty.Client
	counties map[string]countyQuery
	cacheTTL time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// NewClient 创建查询客户端
func NewClient(cfg *config.Config) *Client {
	rest := resty.New().
		SetTimeout(cfg.GIS.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		rest:     rest,
		counties: countyQueries(cfg),
		cacheTTL: cfg.GIS.CacheTTL,
		cache:    make(map[string]cacheEntry),
	}
}

// Supported 是否已接入该县
func (c *Client) Supported(county string) bool {
	_, ok := c.counties[strings.ToLower(county)]
	return ok
}

// Lookup 查询一块宗地并返回归一化记录。
// 所有失败都以 error 返回，调用方负责把失败降级为手工录入。
func (c *Client) Lookup(ctx context.Context, county, parcelID string) (*PropertyRecord, error) {
	q, ok := c.counties[strings.ToLower(county)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCountyUnsupported, county)
	}

	parcel := q.normalize(parcelID)
	if parcel == "" {
		return nil, fmt.Errorf("%w: 宗地号为空", ErrParcelNotFound)
	}

	cacheKey := strings.ToLower(county) + ":" + parcel
	if rec := c.cached(cacheKey); rec != nil {
		klog.V(6).Infof("[gis.Lookup] 命中缓存: %s", cacheKey)
		return rec, nil
	}

	klog.V(6).Infof("[gis.Lookup] 查询 %s 县宗地 %s", county, parcel)

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"where":          fmt.Sprintf("%s='%s'", q.field, parcel),
			"outFields":      "*",
			"returnGeometry": "false",
			"f":              "json",
		}).
		Get(q.url)
	if err != nil {
		return nil, fmt.Errorf("宗地服务请求失败: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrBadResponse, resp.StatusCode())
	}

	var fr featureResponse
	if err := json.Unmarshal(resp.Body(), &fr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if fr.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadResponse, fr.Error.Message)
	}
	if len(fr.Features) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrParcelNotFound, parcelID)
	}

	record := q.mapAttrs(fr.Features[0].Attributes)
	c.store(cacheKey, record)
	return record, nil
}

func (c *Client) cached(key string) *PropertyRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[key]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(c.cache, key)
		return nil
	}
	return entry.record
}

func (c *Client) store(key string, record *PropertyRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{record: record, expiresAt: time.Now().Add(c.cacheTTL)}
}

// attrString 属性值转字符串，数值型邮编等也能取出
func attrString(attrs map[string]any, key string) string {
	v, ok := attrs[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return fmt.Sprintf("%.0f", t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
