package recognition

// recognitionPrompt instructs the model to answer with one JSON object in the
// exact shape the mapper expects. The model frequently ignores the "JSON
// only" instruction, which is why the coercion layer exists.
const recognitionPrompt = `请仔细分析这张海洋生物图片，并以JSON格式返回详细信息。请严格按照以下JSON结构返回：
{
    "scientificName": "学名",
    "commonName": "英文俗名",
    "chineseName": "中文名",
    "classification": {
        "kingdom": "界",
        "phylum": "门",
        "clazz": "纲",
        "order": "目",
        "family": "科",
        "genus": "属",
        "species": "种"
    },
    "habitat": "栖息地描述",
    "distribution": "分布区域",
    "characteristics": "特征描述",
    "sizeRange": "体型范围",
    "diet": "食性",
    "conservationStatus": "保护状态",
    "description": "详细描述",
    "confidence": 0.95
}

如果无法确定具体种类，请标注"confidence"较低的值，并在相应字段中标注"未确定"或"疑似"。
请只返回JSON数据，不要包含其他文字说明。`

// Prompt returns the fixed instruction text sent with every image. It takes
// no inputs; model selection belongs to the transport layer.
func Prompt() string {
	return recognitionPrompt
}
