package posts

import (
	"strings"
	"time"

	"github.com/xiaoqianling/ReiAlgoAPI/internal/models"
)

const SampleID = "mock-id-2"

var sampleCreatedAt = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

const hooksRule = "使用Hooks时，请确保遵守Hooks的规则，特别是在条件语句和循环中。"

// Fences are written as ~~~ so the text fits in a raw string literal.
const sampleMarkdown = `
# React Hooks 全面指南

## 什么是React Hooks？
React Hooks是React 16.8引入的新特性，它允许你在函数组件中使用state和其他React特性。

## 基础Hooks

### useState
~~~jsx
function Counter() {
  const [count, setCount] = useState(0);

  return (
    <div>
      <p>You clicked {count} times</p>
      <button onClick={() => setCount(count + 1)}>
        Click me
      </button>
    </div>
  );
}
~~~
### useEffect
~~~jsx
function Example() {
  const [data, setData] = useState(null);

  useEffect(() => {
    fetch('/api/data')
      .then(res => res.json())
      .then(data => setData(data));
  }, []); // 空数组表示只在组件挂载时执行

  return <div>{data ? data.message : 'Loading...'}</div>;
}
~~~
## 高级用法

### 自定义Hook
~~~javascript
function useWindowSize() {
  const [size, setSize] = useState({
    width: window.innerWidth,
    height: window.innerHeight
  });

  useEffect(() => {
    const handleResize = () => setSize({
      width: window.innerWidth,
      height: window.innerHeight
    });

    window.addEventListener('resize', handleResize);
    return () => window.removeEventListener('resize', handleResize);
  }, []);

  return size;
}
~~~

## 性能优化

### useMemo
~~~jsx
function ExpensiveComponent({ a, b }) {
  const result = useMemo(() => {
    // 复杂计算
    return a * b;
  }, [a, b]);

  return <div>{result}</div>;
}
~~~

### useCallback
~~~jsx
function ParentComponent() {
  const [count, setCount] = useState(0);

  const increment = useCallback(() => {
    setCount(c => c + 1);
  }, []);

  return <ChildComponent onClick={increment} />;
}
~~~
`

// Sample builds the demo post. Each call returns a fresh value; updatedAt is
// clamped so it never precedes the fixed creation date.
func Sample(updatedAt time.Time) models.Post {
	if updatedAt.Before(sampleCreatedAt) {
		updatedAt = sampleCreatedAt
	}
	return models.Post{
		ID:       SampleID,
		Title:    "深入理解React Hooks：从基础到高级用法",
		Username: "react-expert",
		UserLink: "/user/react-expert",
		Contents: []models.ContentBlock{
			models.Block(models.Markdown{Content: strings.ReplaceAll(sampleMarkdown, "~~~", "```")}),
			models.Block(models.Tip{Level: models.TipLevelTip, Content: hooksRule}),
			models.Block(models.Tip{Level: models.TipLevelWarning, Content: hooksRule}),
			models.Block(models.Tip{Level: models.TipLevelError, Content: hooksRule}),
			models.Block(models.Code{Metadata: []models.CodeBlock{
				{Language: "javascript", Code: "const [state, setState] = useState(initialState);"},
				{Language: "typescript", Code: "const [state, setState] = useState<Type>(initialState);"},
			}}),
			models.Block(models.Fold{Title: "测试标题", Content: "测试文本"}),
		},
		CreatedAt: sampleCreatedAt,
		UpdatedAt: updatedAt,
		Tags:      []models.TagType{models.TagTech},
	}
}
