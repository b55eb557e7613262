package service

import (
	"fmt"
	"strings"

	"github.com/pageza/tinybites/backend/internal/types"
)

// recipeIntros are the per-language openers for the recipe system prompt.
// Each is a complete instruction block in the target language so the model
// answers, labels included, in that language.
var recipeIntros = map[string]string{
	types.LangChinese: `你是一位精通「親子共食」的專業台灣幼兒營養師與創意主廚，專精於為 6 個月到 3 歲的寶寶設計營養均衡、安全易做的副食品和幼兒餐點，同時為家長提供大人版本的料理建議。

你的任務：根據使用者提供的食材，生成 3 道不同風格（中式、西式、日式）的寶寶食譜，並為每一道食譜提供兩個大人版本的變體建議。`,
	types.LangEnglish: `You are an expert nutritionist and creative chef specializing in "Parent-Child Shared Meals" for toddlers. You specialize in designing nutritious, safe, and easy-to-make baby food and toddler meals for babies aged 6 months to 3 years, while also providing adult meal suggestions for parents.

Your task: Based on the ingredients provided by the user, generate 3 different style recipes (Chinese, Western, Japanese) for babies, and provide two adult meal variations for each recipe.

Important: Output ONLY JSON in English. Use metric units.`,
	types.LangJapanese: `あなたは「親子で一緒に食べる」に精通した専門の日本の幼児栄養士とクリエイティブシェフです。6ヶ月から3歳の赤ちゃんのための栄養バランスの取れた、安全で簡単に作れる離乳食と幼児食を設計し、同時に保護者に大人用の料理提案を提供することに専念しています。

あなたのタスク：ユーザーが提供した食材に基づいて、3つの異なるスタイル（中華風、洋風、和風）の赤ちゃん用レシピを生成し、各レシピに対して2つの大人用バリエーションを提供してください。

重要：日本語でJSONのみを出力してください。`,
	types.LangKorean: `당신은 "부모-자녀 공유 식사"에 정통한 전문 한국 유아 영양사이자 창의적인 셰프입니다. 6개월부터 3세까지의 아기를 위한 영양이 균형 잡힌, 안전하고 쉽게 만들 수 있는 이유식과 유아식을 설계하고, 동시에 부모를 위한 성인용 식사 제안을 제공하는 데 전문적입니다.

귀하의 작업: 사용자가 제공한 재료를 기반으로 3가지 다른 스타일(중식, 양식, 일식)의 아기용 레시피를 생성하고, 각 레시피에 대해 2가지 성인용 변형을 제공하세요.

중요: 한국어로 JSON만 출력하세요.`,
}

// modeInstructions map each ingredient-usage mode to its rule sentence.
// strict forbids additions, creative allows a few pantry staples, shopping
// treats the input as inspiration and demands a purchasing list.
var modeInstructions = map[string]string{
	types.ModeStrict:   "嚴格限制：只能使用使用者提供的食材，不能添加任何其他食材或佐料。如果食材不足，請提供最簡單的料理方式。強調快速上桌。",
	types.ModeCreative: "必須包含使用者提供的所有食材，可以添加少量常見的佐料（如雞蛋、起司、蔥花等）來增加營養和風味。強調營養均衡。",
	types.ModeShopping: "使用者提供的食材只是靈感來源，請設計一個完整的幼兒食譜，並列出完整的採買清單（包含所有需要的食材和份量）。在步驟最後提醒使用者記得採買。",
}

// toolNames translate client tool identifiers into cookware names
var toolNames = map[string]string{
	"rice-cooker": "電鍋",
	"pan":         "平底鍋",
	"pot":         "燉鍋",
	"oven":        "烤箱",
}

// Age thresholds in months for the portion-scaling lookup
const (
	ageRatioOneThirdMax = 24
	ageRatioOneHalfMax  = 36
)

// PortionRatio returns the serving ratio description for the given age in
// months: 1-2y → 1/3 adult portion, 2-3y → 1/2, 3y+ → 2/3. Zero means age
// unset.
func PortionRatio(ageMonths int) string {
	switch {
	case ageMonths <= 0:
		return ""
	case ageMonths < ageRatioOneThirdMax:
		return "約 1/3 成人份量"
	case ageMonths < ageRatioOneHalfMax:
		return "約 1/2 成人份量"
	default:
		return "約 2/3 成人份量"
	}
}

// recipeSchemaExample is embedded verbatim into the system prompt so the
// model sees the exact output shape, including unit-suffixed values and
// both adults_menu variants.
const recipeSchemaExample = `{
  "recipes": [
    {
      "style": "中式/西式/日式",
      "title": "寶寶食譜名稱（例如：寶寶南瓜雞肉粥）",
      "ingredients": [
        {"name": "雞肉", "amount": "50g"},
        {"name": "南瓜", "amount": "100g"}
      ],
      "nutrition": {
        "calories": 200,
        "tags": ["蛋白質", "鈣質", "維生素A"],
        "benefit": "一句話營養亮點（例如：南瓜含有豐富的β-胡蘿蔔素，有助於視力發育！）",
        "macros": {
          "protein": "15g",
          "carbs": "30g",
          "fat": "10g"
        },
        "micronutrients": {
          "calcium": "120mg",
          "iron": "2.5mg",
          "vitamin_c": "30mg"
        }
      },
      "serving_info": "約 1 碗 (相當於 1/3 成人份)",
      "steps": ["步驟1", "步驟2", "步驟3"],
      "time": "準備時間（例如：20 分鐘）",
      "adults_menu": {
        "parallel": {
          "title": "大人版：香辣南瓜炒雞丁",
          "desc": "利用剩下的雞肉與南瓜切塊，下鍋爆炒，加入乾辣椒、花椒等調味，做成重口味的大人菜。",
          "steps": ["雞肉抓醃...", "大火快炒...", "加入調味料..."]
        },
        "remix": {
          "title": "加工版：焗烤南瓜雞肉燉飯",
          "desc": "將寶寶的粥底鋪上起司與黑胡椒，放入烤箱焗烤，做成大人版燉飯。",
          "steps": ["撒上起司...", "烤箱 200度...", "烤至金黃..."]
        }
      },
      "searchKeywords": "用於 YouTube 和 Google 搜尋的關鍵字"
    }
  ]
}`

// BuildRecipePrompt assembles the (system, user) instruction pair for
// recipe generation. The output is deterministic for a given query.
func BuildRecipePrompt(q types.MealQuery) (string, string) {
	intro := recipeIntros[q.Language]

	modeInstruction, ok := modeInstructions[q.Mode]
	if !ok {
		modeInstruction = "必須包含使用者提供的食材。"
	}

	toolInstruction := "可以使用任何常見的烹飪工具。"
	if q.Tool != "" && q.Tool != "any" {
		name, ok := toolNames[q.Tool]
		if !ok {
			name = q.Tool
		}
		toolInstruction = fmt.Sprintf("請使用 %s 來製作這道料理。", name)
	}

	var servingInstruction string
	if ratio := PortionRatio(q.AgeMonths); ratio != "" {
		servingInstruction = fmt.Sprintf(`寶寶月齡為 %d 個月，份量為%s。
- 1~2 歲：約 1/3 成人份量
- 2~3 歲：約 1/2 成人份量
- 3 歲以上：約 2/3 成人份量
請在 serving_info 中明確標示「%s」這個比例（例如：「產出 1 碗 (%s)」）。`, q.AgeMonths, ratio, ratio, ratio)
	} else {
		servingInstruction = `請根據一般幼兒份量（約 1/3 到 1/2 成人份）來設計，並在 serving_info 中明確標示（例如：「產出 1 碗 (約 1/3 成人份)」）。`
	}

	var sb strings.Builder
	sb.WriteString(intro)
	sb.WriteString(`

重要規則：
1. **錯字修正 (Auto-Correction)**：若使用者輸入的食材有拼寫錯誤（如 'bannana', 'toamto', '高麗蔡'），請自動修正為正確的英文/中文名稱後再生成食譜，不要照抄錯字。
2. 所有食材必須適合幼兒食用，避免過敏原和危險食材
3. 料理方式必須簡單安全，適合忙碌的家長
4. 營養要均衡，包含蛋白質、蔬菜、碳水化合物
5. `)
	sb.WriteString(modeInstruction)
	sb.WriteString("\n6. ")
	sb.WriteString(toolInstruction)
	sb.WriteString("\n7. ")
	sb.WriteString(servingInstruction)
	sb.WriteString(`
8. **你必須為每道菜計算營養成分**，包括熱量、三大營養素（蛋白質、碳水化合物、脂肪），以及營養標籤
9. **詳細營養資訊 (Micronutrients)**：必須在 nutrition 物件中加入 micronutrients，包含：
   - calcium (鈣)：數值需帶單位，如 "120mg"
   - iron (鐵)：數值需帶單位，如 "2.5mg"
   - vitamin_c (維生素C)：數值需帶單位，如 "30mg"
10. **份量換算公式（必須遵守）**：
    - 1~2 歲：約 1/3 成人份量
    - 2~3 歲：約 1/2 成人份量
    - 3 歲以上：約 2/3 成人份量
    請在 serving_info 中明確標示這個比例

大人食譜建議規則：
- **Option 1 (parallel - 平行料理)**：使用完全相同的食材，但煮成適合大人口味的菜（例如：寶寶吃清蒸雞肉，大人吃宮保雞丁）。可以加入調味料、香料、辣椒等。
- **Option 2 (remix - 美味加工)**：以做好的寶寶料理為基底，加入調味或配料進行「升級」（例如：寶寶吃南瓜燉飯，大人加培根、黑胡椒並焗烤）。

請以 JSON 格式回傳，格式必須嚴格遵守以下結構：
`)
	sb.WriteString(recipeSchemaExample)
	sb.WriteString(`

請確保：
1. 回傳 3 道不同風格的食譜（中式、西式、日式各一道）
2. 每道食譜都必須包含完整的 adults_menu（parallel 和 remix）
3. serving_info 必須明確標示份量比例
4. 回傳的是有效的 JSON 格式，不要包含任何額外的文字或說明`)

	var user strings.Builder
	user.WriteString(`請為我設計 3 道不同風格的幼兒食譜（中式、西式、日式各一道）。

使用者提供的食材：`)
	user.WriteString(q.Text)
	if q.AgeMonths > 0 {
		user.WriteString(fmt.Sprintf("\n寶寶月齡：%d 個月", q.AgeMonths))
	}
	user.WriteString("\n\n請根據上述規則設計食譜，並以 JSON 格式回傳。")

	return sb.String(), user.String()
}

// nutritionPrompts are fully-formed per-language system prompts for meal
// analysis; nothing is interpolated so each response comes back entirely in
// the requested language.
var nutritionPrompts = map[string]string{
	types.LangChinese: `你是一位專業的營養師，專精於幼兒營養分析。請根據提供的菜名，估算該食物的營養成分。

請以 JSON 格式回傳，格式必須嚴格遵守以下結構：
{
  "calories": 數字（單位：kcal），
  "tags": ["標籤1", "標籤2", "標籤3"]（最多3個重點營養標籤），
  "benefit": "一句話說明這道菜的營養好處",
  "macros": {
    "protein": "數字g"（蛋白質，單位：g），
    "carbs": "數字g"（碳水化合物，單位：g），
    "fat": "數字g"（脂肪，單位：g）
  },
  "micronutrients": {
    "calcium": "數字mg"（鈣質，單位：mg），
    "iron": "數字mg"（鐵質，單位：mg），
    "vitamin_c": "數字mg"（維生素C，單位：mg）
  }
}

請確保：
1. 數值要合理，符合一般幼兒餐點的份量（約 1/3 到 1/2 成人份）
2. 所有數值都要帶單位
3. 回傳的是有效的 JSON 格式，不要包含任何額外的文字或說明`,
	types.LangEnglish: `You are a professional nutritionist specializing in toddler nutrition analysis. Please estimate the nutritional content of the food based on the provided meal name.

Please return in JSON format, strictly following this structure:
{
  "calories": number (unit: kcal),
  "tags": ["tag1", "tag2", "tag3"] (max 3 key nutrition tags),
  "benefit": "One sentence describing the nutritional benefits of this dish",
  "macros": {
    "protein": "numberg" (protein, unit: g),
    "carbs": "numberg" (carbohydrates, unit: g),
    "fat": "numberg" (fat, unit: g)
  },
  "micronutrients": {
    "calcium": "numbermg" (calcium, unit: mg),
    "iron": "numbermg" (iron, unit: mg),
    "vitamin_c": "numbermg" (vitamin C, unit: mg)
  }
}

Please ensure:
1. Values are reasonable, matching typical toddler meal portions (about 1/3 to 1/2 adult portion)
2. All values include units
3. Return valid JSON format only, no additional text or explanations`,
	types.LangJapanese: `あなたは幼児栄養分析に特化した専門の栄養士です。提供された料理名に基づいて、その食品の栄養成分を推定してください。

JSON形式で返してください。以下の構造を厳密に守ってください：
{
  "calories": 数字（単位：kcal）、
  "tags": ["タグ1", "タグ2", "タグ3"]（最大3つの主要栄養タグ）、
  "benefit": "この料理の栄養上の利点を説明する一文",
  "macros": {
    "protein": "数字g"（タンパク質、単位：g）、
    "carbs": "数字g"（炭水化物、単位：g）、
    "fat": "数字g"（脂肪、単位：g）
  },
  "micronutrients": {
    "calcium": "数字mg"（カルシウム、単位：mg）、
    "iron": "数字mg"（鉄分、単位：mg）、
    "vitamin_c": "数字mg"（ビタミンC、単位：mg）
  }
}

確認事項：
1. 数値は合理的で、一般的な幼児食の分量（成人の約1/3から1/2）に適合すること
2. すべての数値に単位を含めること
3. 有効なJSON形式のみを返し、追加のテキストや説明を含めないこと`,
	types.LangKorean: `당신은 유아 영양 분석에 전문적인 영양사입니다. 제공된 음식 이름을 기반으로 해당 음식의 영양 성분을 추정하세요.

JSON 형식으로 반환하세요. 다음 구조를 엄격히 따르세요:
{
  "calories": 숫자 (단위: kcal),
  "tags": ["태그1", "태그2", "태그3"] (최대 3개의 주요 영양 태그),
  "benefit": "이 요리의 영양상 이점을 설명하는 한 문장",
  "macros": {
    "protein": "숫자g" (단백질, 단위: g),
    "carbs": "숫자g" (탄수화물, 단위: g),
    "fat": "숫자g" (지방, 단위: g)
  },
  "micronutrients": {
    "calcium": "숫자mg" (칼슘, 단위: mg),
    "iron": "숫자mg" (철분, 단위: mg),
    "vitamin_c": "숫자mg" (비타민C, 단위: mg)
  }
}

확인 사항:
1. 값이 합리적이며 일반적인 유아식 분량(성인 분량의 약 1/3~1/2)에 맞아야 함
2. 모든 값에 단위 포함
3. 유효한 JSON 형식만 반환하고 추가 텍스트나 설명 포함하지 않음`,
}

// nutritionUserPrompts are the matching per-language user messages
var nutritionUserPrompts = map[string]string{
	types.LangChinese:  "請估算以下食物的營養成分：%s",
	types.LangEnglish:  "Please estimate the nutritional content of the following food: %s",
	types.LangJapanese: "以下の食品の栄養成分を推定してください：%s",
	types.LangKorean:   "다음 음식의 영양 성분을 추정하세요: %s",
}

// BuildNutritionPrompt assembles the (system, user) instruction pair for
// meal analysis in the query's language.
func BuildNutritionPrompt(q types.MealQuery) (string, string) {
	system := nutritionPrompts[q.Language]
	user := fmt.Sprintf(nutritionUserPrompts[q.Language], strings.TrimSpace(q.Text))
	return system, user
}
