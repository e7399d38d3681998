package registry

// catalogOrder fixes the iteration order of the compiled-in catalog:
// paid first, then free, trial, community, and infra providers.
// Selection tie-breaking and the /providers listing depend on this order.
var catalogOrder = []ProviderID{
	"openai",
	"anthropic",
	"openrouter",
	"google-ai",
	"groq",
	"cerebras",
	"cohere",
	"github-models",
	"cloudflare",
	"mistral",
	"nvidia",
	"huggingface",
	"sambanova",
	"hyperbolic",
	"fireworks",
	"scaleway",
	"together",
	"deepseek",
	"nebius",
	"novita",
	"aihubmix",
	"runpod",
	"banana",
	"modal",
}

// catalog is the compiled-in provider table. No secrets live here: API keys
// are referenced by SecretRef and resolved from the secret source at runtime.
// Base URLs may carry {PLACEHOLDER} tokens, also resolved at runtime.
var catalog = map[ProviderID]*Entry{

	// Paid providers (no free tier).

	"openai": {
		Category:        CategoryPaid,
		SecretRef:       "OPENAI_API_KEY",
		BaseURLTemplate: "https://api.openai.com/v1",
		DefaultModel:    "gpt-4.1-mini",
		FreeModels:      nil,
		PaidModels: []string{
			"gpt-4.1",
			"gpt-4.1-mini",
			"gpt-4.1-nano",
			"gpt-4o",
			"gpt-4o-mini",
			"gpt-4-turbo",
			"gpt-3.5-turbo",
			"o1",
			"o1-mini",
			"o3",
			"o3-mini",
			"o4-mini",
			"gpt-5",
			"gpt-5-mini",
			"text-embedding-3-large",
			"text-embedding-3-small",
		},
		Capabilities:      []Capability{CapabilityText, CapabilityCode, CapabilityEmbeddings, CapabilityMultimodal},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
		Notes:             "Primary paid fallback; highest reliability for embeddings.",
	},

	"anthropic": {
		Category:        CategoryPaid,
		SecretRef:       "ANTHROPIC_API_KEY",
		BaseURLTemplate: "https://api.anthropic.com/v1",
		DefaultModel:    "claude-3.5-sonnet",
		FreeModels:      nil,
		PaidModels: []string{
			"claude-3.5-sonnet",
			"claude-3-opus",
			"claude-3-sonnet",
			"claude-3-haiku",
		},
		Capabilities:      []Capability{CapabilityText, CapabilityCode, CapabilityMultimodal},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	// Free providers (persistent free tier).

	"openrouter": {
		Category:        CategoryFree,
		SecretRef:       "OPENROUTER_API_KEY",
		BaseURLTemplate: "https://openrouter.ai/api/v1",
		DefaultModel:    "openai/gpt-oss-20b:free",
		FreeModels: []string{
			"openai/gpt-oss-120b:free",
			"openai/gpt-oss-20b:free",
			"meta-llama/llama-3.1-405b-instruct:free",
			"meta-llama/llama-3.3-70b-instruct:free",
			"meta-llama/llama-3.2-3b-instruct:free",
			"google/gemma-3-27b-it:free",
			"google/gemma-3-12b-it:free",
			"google/gemma-3-4b-it:free",
			"deepseek/deepseek-r1-0528:free",
			"qwen/qwen3-coder:free",
			"qwen/qwen3-4b:free",
			"qwen/qwen-2.5-vl-7b-instruct:free",
			"mistralai/mistral-small-3.1-24b-instruct:free",
			"nvidia/nemotron-nano-9b-v2:free",
			"moonshotai/kimi-k2:free",
			"nousresearch/hermes-3-llama-3.1-405b:free",
			"z-ai/glm-4.5-air:free",
			"tngtech/deepseek-r1t-chimera:free",
		},
		PaidModels: []string{
			"anthropic/claude-3.7-sonnet",
			"anthropic/claude-3.5-sonnet",
			"openai/gpt-4o",
			"google/gemini-2.5-pro",
			"meta-llama/llama-3.3-70b-instruct",
			"qwen/qwen3-max-thinking",
		},
		Capabilities:      []Capability{CapabilityText, CapabilityCode, CapabilityMultimodal},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleNative,
		Notes:             "Great free option. Quotas vary by day/minute.",
	},

	"google-ai": {
		Category:        CategoryFree,
		SecretRef:       "GOOGLE_AI_API_KEY",
		BaseURLTemplate: "https://generativelanguage.googleapis.com/v1beta/openai",
		DefaultModel:    "gemini-2.5-flash",
		FreeModels: []string{
			"gemini-2.5-flash",
			"gemini-2.5-flash-lite",
			"gemma-3-27b-it",
			"gemma-3-12b-it",
			"gemma-3-4b-it",
			"gemma-3-1b-it",
		},
		PaidModels: []string{
			"gemini-2.5-pro",
			"gemini-2.0-flash",
			"gemini-1.5-pro",
			"gemini-1.5-flash",
		},
		Capabilities:      []Capability{CapabilityText, CapabilityMultimodal, CapabilityEmbeddings},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
		RateLimits:        &RateLimits{RequestsPerMinute: 30},
		Notes:             "Data usage policy differs by region.",
	},

	"groq": {
		Category:        CategoryFree,
		SecretRef:       "GROQ_API_KEY",
		BaseURLTemplate: "https://api.groq.com/openai/v1",
		DefaultModel:    "llama-3.3-70b-versatile",
		FreeModels: []string{
			"openai/gpt-oss-120b",
			"openai/gpt-oss-20b",
			"llama-3.1-8b-instant",
			"llama-3.3-70b-versatile",
			"meta-llama/llama-4-scout-17b-16e-instruct",
			"meta-llama/llama-4-maverick-17b-128e-instruct",
			"qwen/qwen3-32b",
			"moonshotai/kimi-k2-instruct",
			"whisper-large-v3",
			"whisper-large-v3-turbo",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText, CapabilityCode, CapabilityAudio},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"cerebras": {
		Category:        CategoryFree,
		SecretRef:       "CEREBRAS_API_KEY",
		BaseURLTemplate: "https://api.cerebras.ai/v1",
		DefaultModel:    "llama-3.3-70b",
		FreeModels: []string{
			"gpt-oss-120b",
			"qwen3-235b-a22b",
			"llama-3.3-70b",
			"qwen3-32b",
			"llama-3.1-8b",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"cohere": {
		Category:        CategoryFree,
		SecretRef:       "COHERE_API_KEY",
		BaseURLTemplate: "https://api.cohere.com/v1",
		DefaultModel:    "command-a-03-2025",
		FreeModels: []string{
			"command-a-03-2025",
			"command-a-reasoning-08-2025",
			"command-a-vision-07-2025",
			"command-r-plus-08-2024",
			"command-r-08-2024",
			"command-r7b-12-2024",
			"c4ai-aya-expanse-32b",
			"c4ai-aya-vision-8b",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText, CapabilityEmbeddings},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
		RateLimits:        &RateLimits{RequestsPerMinute: 20},
	},

	"github-models": {
		Category:        CategoryFree,
		SecretRef:       "GITHUB_MODELS_API_KEY",
		BaseURLTemplate: "https://models.github.ai/inference",
		DefaultModel:    "gpt-4.1-mini",
		FreeModels: []string{
			"gpt-4.1",
			"gpt-4.1-mini",
			"gpt-4o",
			"gpt-4o-mini",
			"o4-mini",
			"Meta-Llama-3.1-405B-Instruct",
			"Llama-3.3-70B-Instruct",
			"Llama-3.2-11B-Vision-Instruct",
			"DeepSeek-R1",
			"DeepSeek-V3-0324",
			"Mistral-Small-3.1",
			"Codestral-2501",
			"Phi-4",
			"Phi-4-multimodal-instruct",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
		Notes:             "Extremely restrictive input/output token limits.",
	},

	"cloudflare": {
		Category:        CategoryFree,
		SecretRef:       "CLOUDFLARE_API_KEY",
		BaseURLTemplate: "https://api.cloudflare.com/client/v4/accounts/{CLOUDFLARE_ACCOUNT_ID}/ai/v1",
		DefaultModel:    "@cf/meta/llama-3.3-70b-instruct-fp8-fast",
		FreeModels: []string{
			"@cf/openai/gpt-oss-120b",
			"@cf/openai/gpt-oss-20b",
			"@cf/qwen/qwen3-30b-a3b-fp8",
			"@cf/qwen/qwen2.5-coder-32b-instruct",
			"@cf/google/gemma-3-12b-it",
			"@cf/mistralai/mistral-small-3.1-24b-instruct",
			"@cf/meta/llama-3.3-70b-instruct-fp8-fast",
			"@cf/meta/llama-4-scout-17b-16e-instruct",
			"@cf/meta/llama-3.2-11b-vision-instruct",
			"@cf/meta/llama-3.1-8b-instruct-fp8",
			"@cf/deepseek-ai/deepseek-r1-distill-qwen-32b",
			"@cf/microsoft/phi-2",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText, CapabilityVision},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"mistral": {
		Category:        CategoryFree,
		SecretRef:       "MISTRAL_API_KEY",
		BaseURLTemplate: "https://api.mistral.ai/v1",
		DefaultModel:    "mistral-small-latest",
		FreeModels: []string{
			"mistral-small-latest",
			"mistral-medium-latest",
			"open-mistral-nemo",
			"codestral-latest",
			"mistral-large-latest",
		},
		PaidModels: []string{
			"mistral-large-2411",
			"pixtral-large-latest",
		},
		Capabilities:      []Capability{CapabilityText, CapabilityCode},
		SupportsStreaming: false,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"nvidia": {
		Category:        CategoryFree,
		SecretRef:       "NVIDIA_API_KEY",
		BaseURLTemplate: "https://integrate.api.nvidia.com/v1",
		DefaultModel:    "deepseek-ai/deepseek-v3.1-terminus",
		FreeModels: []string{
			"deepseek-ai/deepseek-v3.1-terminus",
			"deepseek-ai/deepseek-r1",
			"meta/llama-3.1-8b-instruct",
			"meta/llama-3.1-70b-instruct",
			"meta/llama-3.1-405b-instruct",
			"meta/llama-3.3-70b-instruct",
			"mistralai/mistral-7b-instruct-v0.3",
			"google/gemma-2-9b-it",
		},
		PaidModels: []string{
			"nvidia/llama-3.1-nemotron-70b-instruct",
		},
		Capabilities:      []Capability{CapabilityText, CapabilityCode},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"huggingface": {
		Category:        CategoryFree,
		SecretRef:       "HUGGINGFACE_API_KEY",
		BaseURLTemplate: "https://router.huggingface.co/v1",
		DefaultModel:    "meta-llama/Meta-Llama-3.1-8B-Instruct",
		FreeModels: []string{
			"meta-llama/Meta-Llama-3.1-8B-Instruct",
			"mistralai/Mistral-7B-Instruct-v0.3",
			"google/gemma-2-9b-it",
			"Qwen/Qwen2.5-72B-Instruct",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	// Trial providers (signup credits, may expire).

	"sambanova": {
		Category:        CategoryTrial,
		SecretRef:       "SAMBANOVA_API_KEY",
		BaseURLTemplate: "https://api.sambanova.ai/v1",
		DefaultModel:    "Meta-Llama-3.3-70B-Instruct",
		FreeModels: []string{
			"Meta-Llama-3.3-70B-Instruct",
			"Meta-Llama-3.1-8B-Instruct",
			"Meta-Llama-3.1-405B-Instruct",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"hyperbolic": {
		Category:        CategoryTrial,
		SecretRef:       "HYPERBOLIC_API_KEY",
		BaseURLTemplate: "https://api.hyperbolic.xyz/v1",
		DefaultModel:    "meta-llama/Llama-3.3-70B-Instruct",
		FreeModels: []string{
			"meta-llama/Llama-3.3-70B-Instruct",
			"meta-llama/Llama-3.1-70B-Instruct",
			"Qwen/Qwen2.5-Coder-32B-Instruct",
			"deepseek-ai/DeepSeek-V3",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText, CapabilityCode},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"fireworks": {
		Category:        CategoryTrial,
		SecretRef:       "FIREWORKS_API_KEY",
		BaseURLTemplate: "https://api.fireworks.ai/inference/v1",
		DefaultModel:    "accounts/fireworks/models/llama-v3p3-70b-instruct",
		FreeModels: []string{
			"accounts/fireworks/models/llama-v3p3-70b-instruct",
			"accounts/fireworks/models/llama-v3p1-8b-instruct",
			"accounts/fireworks/models/qwen2p5-72b-instruct",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"scaleway": {
		Category:        CategoryTrial,
		SecretRef:       "SCALEWAY_API_KEY",
		BaseURLTemplate: "https://api.scaleway.ai/v1",
		DefaultModel:    "llama-3.3-70b-instruct",
		FreeModels: []string{
			"llama-3.3-70b-instruct",
			"llama-3.1-8b-instruct",
			"mistral-nemo-instruct-2407",
			"pixtral-12b-2409",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText, CapabilityVision},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"together": {
		Category:        CategoryTrial,
		SecretRef:       "TOGETHER_API_KEY",
		BaseURLTemplate: "https://api.together.xyz/v1",
		DefaultModel:    "meta-llama/Llama-3.3-70B-Instruct-Turbo",
		FreeModels: []string{
			"meta-llama/Llama-3.3-70B-Instruct-Turbo",
			"meta-llama/Meta-Llama-3.1-8B-Instruct-Turbo",
			"Qwen/Qwen2.5-72B-Instruct-Turbo",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"deepseek": {
		Category:        CategoryTrial,
		SecretRef:       "DEEPSEEK_API_KEY",
		BaseURLTemplate: "https://api.deepseek.com/v1",
		DefaultModel:    "deepseek-chat",
		FreeModels: []string{
			"deepseek-chat",
			"deepseek-reasoner",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText, CapabilityCode},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"nebius": {
		Category:        CategoryTrial,
		SecretRef:       "NEBIUS_API_KEY",
		BaseURLTemplate: "https://api.studio.nebius.ai/v1",
		DefaultModel:    "meta-llama/Meta-Llama-3.1-70B-Instruct",
		FreeModels: []string{
			"meta-llama/Meta-Llama-3.1-70B-Instruct",
			"meta-llama/Meta-Llama-3.1-8B-Instruct",
			"Qwen/Qwen2.5-Coder-32B-Instruct",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"novita": {
		Category:        CategoryTrial,
		SecretRef:       "NOVITA_API_KEY",
		BaseURLTemplate: "https://api.novita.ai/v3/openai",
		DefaultModel:    "meta-llama/llama-3.3-70b-instruct",
		FreeModels: []string{
			"meta-llama/llama-3.3-70b-instruct",
			"meta-llama/llama-3.1-8b-instruct",
			"deepseek/deepseek-r1",
		},
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityText},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	// Community aggregators.

	"aihubmix": {
		Category:        CategoryCommunity,
		SecretRef:       "AIHUBMIX_API_KEY",
		BaseURLTemplate: "https://aihubmix.com/v1",
		DefaultModel:    "gpt-4o-mini",
		FreeModels: []string{
			"gpt-4o-mini",
			"gemini-2.0-flash",
			"llama-3.3-70b-instruct",
		},
		PaidModels: []string{
			"gpt-4o",
			"claude-3.5-sonnet",
		},
		Capabilities:      []Capability{CapabilityText},
		SupportsStreaming: true,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	// Infra providers: compute platforms with no enumerable model list.
	// Callers bring their own deployments, so nothing here is selectable.

	"runpod": {
		Category:          CategoryInfra,
		SecretRef:         "RUNPOD_API_KEY",
		BaseURLTemplate:   "https://api.runpod.io/v1",
		DefaultModel:      "",
		FreeModels:        nil,
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityInfra},
		SupportsStreaming: false,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"banana": {
		Category:          CategoryInfra,
		SecretRef:         "BANANA_API_KEY",
		BaseURLTemplate:   "https://api.banana.dev",
		DefaultModel:      "",
		FreeModels:        nil,
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityInfra},
		SupportsStreaming: false,
		SDKStyle:          SDKStyleOpenAICompatible,
	},

	"modal": {
		Category:          CategoryInfra,
		SecretRef:         "MODAL_API_KEY",
		BaseURLTemplate:   "https://api.modal.com/v1",
		DefaultModel:      "",
		FreeModels:        nil,
		PaidModels:        nil,
		Capabilities:      []Capability{CapabilityInfra},
		SupportsStreaming: false,
		SDKStyle:          SDKStyleOpenAICompatible,
	},
}
