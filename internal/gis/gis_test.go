package gis

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/proposalforge/backend/config"
)

func testConfig(pinellasURL, hillsboroughURL string) *config.Config {
	return &config.Config{
		GIS: config.GISConfig{
			PinellasURL:     pinellasURL,
			HillsboroughURL: hillsboroughURL,
			Timeout:         5 * time.Second,
			CacheTTL:        time.Minute,
		},
	}
}

func TestLookupPinellas(t *testing.T) {
	var gotWhere string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotWhere = r.URL.Query().Get("where")
		if r.URL.Query().Get("f") != "json" {
			t.Errorf("缺少 f=json 参数")
		}
		w.Write([]byte(`{"features":[{"attributes":{
			"SITE_ADDR":"7400 22ND AVE N",
			"SITE_CITY":"ST PETERSBURG",
			"SITE_ZIP":33710,
			"OWNER1":"STORAGE PARTNERS OF FLORIDA LLC",
			"LANDUSE_DESC":"Storage/Warehousing",
			"ZONING":"IT"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, ""))
	record, err := c.Lookup(context.Background(), "Pinellas", "12-34-56 78900")
	if err != nil {
		t.Fatalf("Lookup 失败: %v", err)
	}

	// 宗地号归一化：去掉分隔符
	if gotWhere != "PARCELNO='12345678900'" {
		t.Fatalf("where 子句不符: %q", gotWhere)
	}
	if record.Address != "7400 22ND AVE N" {
		t.Fatalf("地址映射不符: %q", record.Address)
	}
	if record.Zip != "33710" {
		t.Fatalf("数值型邮编应转为字符串: %q", record.Zip)
	}
	if record.Owner != "STORAGE PARTNERS OF FLORIDA LLC" {
		t.Fatalf("业主映射不符: %q", record.Owner)
	}
	if record.Zoning != "IT" {
		t.Fatalf("分区映射不符: %q", record.Zoning)
	}
}

func TestLookupHillsborough(t *testing.T) {
	var gotWhere string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotWhere = r.URL.Query().Get("where")
		w.Write([]byte(`{"features":[{"attributes":{
			"SITE_ADDRESS":"100 MAIN ST",
			"SITE_CITY":"TAMPA",
			"SITE_ZIP":"33602",
			"OWNER_NAME":"OAK PLAZA LLC",
			"DOR_DESC":"Vacant Commercial",
			"ZONE_DESC":"CG"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig("", srv.URL))
	record, err := c.Lookup(context.Background(), "Hillsborough", " a1234 56b ")
	if err != nil {
		t.Fatalf("Lookup 失败: %v", err)
	}
	if gotWhere != "PIN='A123456B'" {
		t.Fatalf("Hillsborough 宗地号应去空格并转大写: %q", gotWhere)
	}
	if record.LandUse != "Vacant Commercial" {
		t.Fatalf("用地描述映射不符: %q", record.LandUse)
	}
}

func TestLookupParcelNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, ""))
	_, err := c.Lookup(context.Background(), "Pinellas", "000")
	if !errors.Is(err, ErrParcelNotFound) {
		t.Fatalf("期望 ErrParcelNotFound, 实际 %v", err)
	}
}

func TestLookupUnsupportedCounty(t *testing.T) {
	c := NewClient(testConfig("http://unused", "http://unused"))
	_, err := c.Lookup(context.Background(), "Orange", "123")
	if !errors.Is(err, ErrCountyUnsupported) {
		t.Fatalf("期望 ErrCountyUnsupported, 实际 %v", err)
	}

	if !c.Supported("pinellas") || !c.Supported("Hillsborough") {
		t.Fatal("已接入的县应返回 true")
	}
	if c.Supported("Orange") {
		t.Fatal("未接入的县应返回 false")
	}
}

func TestLookupEmptyParcel(t *testing.T) {
	c := NewClient(testConfig("http://unused", ""))
	_, err := c.Lookup(context.Background(), "Pinellas", " - - ")
	if !errors.Is(err, ErrParcelNotFound) {
		t.Fatalf("归一化后为空的宗地号应报未找到, 实际 %v", err)
	}
}

func TestLookupServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"Invalid query"}}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, ""))
	_, err := c.Lookup(context.Background(), "Pinellas", "123")
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("期望 ErrBadResponse, 实际 %v", err)
	}
}

func TestLookupHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, ""))
	_, err := c.Lookup(context.Background(), "Pinellas", "123")
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("期望 ErrBadResponse, 实际 %v", err)
	}
}

// 成功结果在 TTL 内命中缓存，不再请求服务
func TestLookupCache(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"features":[{"attributes":{"SITE_ADDR":"7400 22ND AVE N"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, ""))
	for i := 0; i < 3; i++ {
		if _, err := c.Lookup(context.Background(), "Pinellas", "123"); err != nil {
			t.Fatalf("Lookup 失败: %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("期望 1 次服务请求, 实际 %d", calls)
	}
}

// 失败不缓存，下次仍会重新请求
func TestLookupFailureNotCached(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, ""))
	c.Lookup(context.Background(), "Pinellas", "123")
	c.Lookup(context.Background(), "Pinellas", "123")
	if calls != 2 {
		t.Fatalf("失败结果不应缓存, 实际请求 %d 次", calls)
	}
}
