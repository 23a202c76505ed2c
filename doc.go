// Package intlai routes text-generation requests to the best available AI
// provider and bridges language gaps with a multi-backend translation
// pipeline.
//
// Intlai models a heterogeneous pool of AI providers (different regions,
// languages, quotas, health), selects the highest-scoring healthy provider
// for each request, localizes the prompt for the provider's cultural
// context, and transparently translates prompt and response when the
// provider cannot serve the user's language directly.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/spiralgang/intlai"
//	    "github.com/spiralgang/intlai/cache"
//	    "github.com/spiralgang/intlai/providers"
//	    "github.com/spiralgang/intlai/translate"
//	)
//
//	func main() {
//	    registry, _ := providers.DefaultRegistry(providers.Config{
//	        APIKeys: map[intlai.ProviderID]string{providers.ZhipuID: os.Getenv("ZHIPU_API_KEY")},
//	    })
//
//	    pipeline := translate.NewPipeline(
//	        []translate.Backend{translate.NewOpenAIBackend(translate.OpenAIConfig{APIKey: key})},
//	        translate.WithCache(cache.NewInMemoryCache()),
//	        translate.WithDetector(translate.NewLinguaDetector()),
//	    )
//
//	    svc := intlai.NewService(registry, pipeline,
//	        intlai.WithRegion(intlai.RegionChina),
//	        intlai.WithUserLanguage(intlai.ChineseSimplified),
//	    )
//
//	    resp, err := svc.GenerateText(context.Background(), "你好", intlai.ChineseSimplified, intlai.QueryGeneralChat)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(resp.Content)
//	}
package intlai
