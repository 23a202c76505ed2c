// Package providers carries the built-in provider catalog: data-driven
// descriptors for the supported vendors plus an OpenAI-compatible
// generation function factory. New vendors are catalog entries, not new
// types.
package providers

import (
	"time"

	"github.com/spiralgang/intlai"
)

// Built-in provider identifiers.
const (
	ZhipuID         intlai.ProviderID = "zhipu_chatglm"
	BaiduErnieID    intlai.ProviderID = "baidu_ernie"
	AlibabaTongyiID intlai.ProviderID = "alibaba_qianwen"
	YandexGPTID     intlai.ProviderID = "yandex_gpt"
	NaverClovaID    intlai.ProviderID = "naver_clova"
	RinnaID         intlai.ProviderID = "rinna"
	AI21ID          intlai.ProviderID = "ai21_jurassic"
	CohereID        intlai.ProviderID = "cohere_ai"
)

// Config carries per-vendor credentials and overrides for the catalog.
type Config struct {
	// APIKeys maps provider IDs to API keys. Vendors without a key are
	// still registered; their generation calls fail with a typed error
	// until a key is supplied.
	APIKeys map[intlai.ProviderID]string

	// BaseURLs overrides the default completions base URL per vendor.
	BaseURLs map[intlai.ProviderID]string
}

func (c Config) key(id intlai.ProviderID) string { return c.APIKeys[id] }

func (c Config) baseURL(id intlai.ProviderID, def string) string {
	if url, ok := c.BaseURLs[id]; ok && url != "" {
		return url
	}
	return def
}

// Zhipu returns the Zhipu AI (ChatGLM) provider descriptor.
func Zhipu(cfg Config) *intlai.Provider {
	return &intlai.Provider{
		ID:          ZhipuID,
		Name:        "Zhipu AI (ChatGLM)",
		Description: "Chinese AI with strong reasoning capabilities and full GLM model suite",
		Languages:   []intlai.LanguageCode{intlai.ChineseSimplified, intlai.ChineseTraditional, intlai.English},
		Regions:     []intlai.RegionCode{intlai.RegionChina, intlai.RegionGlobal},
		Endpoints: []intlai.Endpoint{
			{URL: "https://open.bigmodel.cn/", Region: intlai.RegionChina, Priority: 1, Health: intlai.StatusAvailable},
		},
		Quota: quota(100000, 1000000, 60),
		GenerateFunc: NewOpenAICompatGenerator(ZhipuID, GeneratorConfig{
			APIKey:            cfg.key(ZhipuID),
			BaseURL:           cfg.baseURL(ZhipuID, "https://open.bigmodel.cn/api/paas/v4"),
			Model:             "glm-4",
			RequestsPerMinute: 60,
		}),
	}
}

// BaiduErnie returns the Baidu ERNIE Bot provider descriptor.
func BaiduErnie(cfg Config) *intlai.Provider {
	return &intlai.Provider{
		ID:           BaiduErnieID,
		Name:         "Baidu ERNIE Bot",
		Description:  "Chinese AI with strong Chinese language understanding and cultural context",
		Languages:    []intlai.LanguageCode{intlai.ChineseSimplified, intlai.ChineseTraditional, intlai.English},
		Regions:      []intlai.RegionCode{intlai.RegionChina},
		OptimizerTag: intlai.OptimizerChinese,
		Endpoints: []intlai.Endpoint{
			{URL: "https://aip.baidubce.com/", Region: intlai.RegionChina, Priority: 1, Health: intlai.StatusAvailable},
		},
		Quota: quota(50000, 500000, 30),
		GenerateFunc: NewOpenAICompatGenerator(BaiduErnieID, GeneratorConfig{
			APIKey:            cfg.key(BaiduErnieID),
			BaseURL:           cfg.baseURL(BaiduErnieID, "https://qianfan.baidubce.com/v2"),
			Model:             "ernie-4.0-8k",
			RequestsPerMinute: 30,
		}),
	}
}

// AlibabaTongyi returns the Alibaba Tongyi Qianwen provider descriptor.
func AlibabaTongyi(cfg Config) *intlai.Provider {
	return &intlai.Provider{
		ID:           AlibabaTongyiID,
		Name:         "Alibaba Tongyi Qianwen",
		Description:  "Comprehensive AI with multimodal support and e-commerce optimization",
		Languages:    []intlai.LanguageCode{intlai.ChineseSimplified, intlai.ChineseTraditional, intlai.English},
		Regions:      []intlai.RegionCode{intlai.RegionChina, intlai.RegionGlobal},
		OptimizerTag: intlai.OptimizerECommerce,
		Endpoints: []intlai.Endpoint{
			{URL: "https://dashscope.aliyuncs.com/", Region: intlai.RegionChina, Priority: 1, Health: intlai.StatusAvailable},
		},
		Quota: quota(100000, 1000000, 60),
		GenerateFunc: NewOpenAICompatGenerator(AlibabaTongyiID, GeneratorConfig{
			APIKey:            cfg.key(AlibabaTongyiID),
			BaseURL:           cfg.baseURL(AlibabaTongyiID, "https://dashscope.aliyuncs.com/compatible-mode/v1"),
			Model:             "qwen-plus",
			RequestsPerMinute: 60,
		}),
	}
}

// YandexGPT returns the Yandex GPT provider descriptor.
func YandexGPT(cfg Config) *intlai.Provider {
	return &intlai.Provider{
		ID:           YandexGPTID,
		Name:         "Yandex GPT",
		Description:  "Advanced Russian language model optimized for Russian cultural context",
		Languages:    []intlai.LanguageCode{intlai.Russian, intlai.English},
		Regions:      []intlai.RegionCode{intlai.RegionRussia, intlai.RegionGlobal},
		OptimizerTag: intlai.OptimizerRussian,
		Endpoints: []intlai.Endpoint{
			{URL: "https://llm.api.cloud.yandex.net/", Region: intlai.RegionRussia, Priority: 1, Health: intlai.StatusAvailable},
		},
		Quota: quota(25000, 250000, 20),
		GenerateFunc: NewOpenAICompatGenerator(YandexGPTID, GeneratorConfig{
			APIKey:            cfg.key(YandexGPTID),
			BaseURL:           cfg.baseURL(YandexGPTID, "https://llm.api.cloud.yandex.net/v1"),
			Model:             "yandexgpt",
			RequestsPerMinute: 20,
		}),
	}
}

// NaverClova returns the Naver HyperCLOVA X provider descriptor.
func NaverClova(cfg Config) *intlai.Provider {
	return &intlai.Provider{
		ID:           NaverClovaID,
		Name:         "Naver HyperCLOVA X",
		Description:  "Korean language optimized AI with cultural understanding",
		Languages:    []intlai.LanguageCode{intlai.Korean, intlai.English},
		Regions:      []intlai.RegionCode{intlai.RegionKorea, intlai.RegionGlobal},
		OptimizerTag: intlai.OptimizerKorean,
		Endpoints: []intlai.Endpoint{
			{URL: "https://clovastudio.stream.ntruss.com/", Region: intlai.RegionKorea, Priority: 1, Health: intlai.StatusAvailable},
		},
		Quota: quota(30000, 300000, 25),
		GenerateFunc: NewOpenAICompatGenerator(NaverClovaID, GeneratorConfig{
			APIKey:            cfg.key(NaverClovaID),
			BaseURL:           cfg.baseURL(NaverClovaID, "https://clovastudio.stream.ntruss.com/v1/openai"),
			Model:             "HCX-003",
			RequestsPerMinute: 25,
		}),
	}
}

// Rinna returns the Rinna provider descriptor.
func Rinna(cfg Config) *intlai.Provider {
	return &intlai.Provider{
		ID:           RinnaID,
		Name:         "Rinna",
		Description:  "Japanese conversational AI with cultural context understanding",
		Languages:    []intlai.LanguageCode{intlai.Japanese, intlai.English},
		Regions:      []intlai.RegionCode{intlai.RegionJapan, intlai.RegionGlobal},
		OptimizerTag: intlai.OptimizerJapanese,
		Endpoints: []intlai.Endpoint{
			{URL: "https://api.rinna.co.jp/", Region: intlai.RegionJapan, Priority: 1, Health: intlai.StatusAvailable},
		},
		Quota: quota(20000, 200000, 15),
		GenerateFunc: NewOpenAICompatGenerator(RinnaID, GeneratorConfig{
			APIKey:            cfg.key(RinnaID),
			BaseURL:           cfg.baseURL(RinnaID, "https://api.rinna.co.jp/models/v1"),
			Model:             "nekomata-14b-instruction",
			RequestsPerMinute: 15,
		}),
	}
}

// AI21 returns the AI21 Labs Jurassic provider descriptor.
func AI21(cfg Config) *intlai.Provider {
	return &intlai.Provider{
		ID:          AI21ID,
		Name:        "AI21 Labs Jurassic",
		Description: "Hebrew and multilingual support with advanced reasoning",
		Languages:   []intlai.LanguageCode{intlai.Hebrew, intlai.English, intlai.Arabic},
		Regions:     []intlai.RegionCode{intlai.RegionIsrael, intlai.RegionGlobal},
		Endpoints: []intlai.Endpoint{
			{URL: "https://api.ai21.com/", Region: intlai.RegionGlobal, Priority: 1, Health: intlai.StatusAvailable},
		},
		Quota: quota(40000, 400000, 30),
		GenerateFunc: NewOpenAICompatGenerator(AI21ID, GeneratorConfig{
			APIKey:            cfg.key(AI21ID),
			BaseURL:           cfg.baseURL(AI21ID, "https://api.ai21.com/studio/v1"),
			Model:             "jamba-1.5-large",
			RequestsPerMinute: 30,
		}),
	}
}

// Cohere returns the Cohere For AI provider descriptor.
func Cohere(cfg Config) *intlai.Provider {
	return &intlai.Provider{
		ID:          CohereID,
		Name:        "Cohere For AI",
		Description: "Research-focused free tier with multilingual support",
		Languages:   []intlai.LanguageCode{intlai.English, intlai.French, intlai.Spanish, intlai.German},
		Regions:     []intlai.RegionCode{intlai.RegionCanada, intlai.RegionGlobal},
		Endpoints: []intlai.Endpoint{
			{URL: "https://api.cohere.ai/", Region: intlai.RegionCanada, Priority: 1, Health: intlai.StatusAvailable},
		},
		Quota: quota(60000, 600000, 50),
		GenerateFunc: NewOpenAICompatGenerator(CohereID, GeneratorConfig{
			APIKey:            cfg.key(CohereID),
			BaseURL:           cfg.baseURL(CohereID, "https://api.cohere.ai/compatibility/v1"),
			Model:             "command-r-plus",
			RequestsPerMinute: 50,
		}),
	}
}

// All returns every catalog provider in declaration order.
func All(cfg Config) []*intlai.Provider {
	return []*intlai.Provider{
		Zhipu(cfg),
		BaiduErnie(cfg),
		AlibabaTongyi(cfg),
		YandexGPT(cfg),
		NaverClova(cfg),
		Rinna(cfg),
		AI21(cfg),
		Cohere(cfg),
	}
}

// DefaultRegistry builds a registry holding the full catalog.
func DefaultRegistry(cfg Config) (*intlai.Registry, error) {
	registry := intlai.NewRegistry()
	for _, p := range All(cfg) {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func quota(daily, monthly int64, rpm int) intlai.QuotaInfo {
	return intlai.QuotaInfo{
		DailyLimit:        daily,
		MonthlyLimit:      monthly,
		ResetAt:           time.Now().Add(24 * time.Hour),
		RequestsPerMinute: rpm,
	}
}
